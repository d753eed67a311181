package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EffectGain is the fixed playback gain for one-shot effects, in beep volume steps (base 2)
	EffectGain = -1.7

	// MusicGain is the playback gain for the background loop
	MusicGain = -3.5
)

// Effect Synthesis
const (
	BounceToneHz       = 660.0
	BounceToneDuration = 60 * time.Millisecond

	ScoreToneLowHz       = 392.0
	ScoreToneHighHz      = 523.25
	ScoreToneDuration    = 120 * time.Millisecond
	ScoreToneGapDuration = 30 * time.Millisecond

	// ToneFadeDuration is the attack/release ramp applied to every effect tone
	ToneFadeDuration = 5 * time.Millisecond
)

// Music Loop
const (
	MusicBeatDuration = 600 * time.Millisecond // 100 BPM
	MusicKickDuration = 100 * time.Millisecond
	MusicBassHz       = 110.0
)
