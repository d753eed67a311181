package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the default simulation frequency in ticks per second
	TickRate = 144

	// TickInterval is the default simulation tick interval
	TickInterval = time.Second / TickRate

	// MaxTickDelta caps a single tick's delta time after a stall (debugger, suspend)
	MaxTickDelta = 100 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Channel Limits
const (
	// EventLogInitialCapacity is the preallocated per-channel log size
	EventLogInitialCapacity = 16
)
