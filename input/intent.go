package input

// IntentType discriminates what a terminal event meant
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentAxis   // Paddle key, held for KeyHoldWindow
	IntentAction // Named action such as quit or mute
	IntentMouse  // Pointer moved or clicked
	IntentResize // Terminal resize event
)

// Intent is the result of handling one terminal event
// Name carries the axis or action binding; empty for the other kinds
type Intent struct {
	Type IntentType
	Name string
}
