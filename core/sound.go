package core

// Sound identifies a one-shot sound effect requested by the simulation
type Sound int

const (
	SoundScore  Sound = iota // Ball left the play area
	SoundBounce              // Ball reflected off a paddle
	SoundCount
)

// String returns the sound name for logging
func (s Sound) String() string {
	switch s {
	case SoundScore:
		return "score"
	case SoundBounce:
		return "bounce"
	default:
		return "unknown"
	}
}
