package core

// Side identifies a player half of the play area
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the lowercase side name used in logs and bindings
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
