package parameter

import "time"

// Terminal Input
const (
	// KeyHoldWindow is how long a key press keeps its axis deflected
	// Terminals report repeats but not releases, so a press is treated as a short hold
	KeyHoldWindow = 120 * time.Millisecond
)

// Terminal Layout
const (
	// ScoreRow is the terminal row of the score text slots
	ScoreRow = 0

	// FieldTop is the first terminal row of the play field
	FieldTop = 1

	// StatusRows is the number of rows reserved below the field
	StatusRows = 1
)
