package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityQuit          = 0
	PriorityPaddle        = 10
	PriorityBallMotion    = 20 // Independent of paddle, both before bounce
	PriorityBounce        = 30 // Reads transforms advanced this tick
	PriorityWinner        = 40 // After bounce, publishes score before velocity reads
	PriorityVelocity      = 50 // Consumes bounce and score of the same tick
	PriorityBallLifecycle = 60 // After winner and velocity
	PriorityScoreText     = 70 // After score state settled
	PriorityAudio         = 80 // Pure consumer, end of tick
)
