package parameter

// Play Area
const (
	// AreaWidth is the play-area width in world units
	AreaWidth float32 = 100.0

	// AreaHeight is the play-area height in world units
	AreaHeight float32 = 100.0
)

// Paddle
const (
	PaddleWidth  float32 = 4.0
	PaddleHeight float32 = 16.0

	// PaddleSpeed is the displacement per tick at full axis deflection
	PaddleSpeed float32 = 1.2
)

// Ball
const (
	BallRadius    float32 = 2.0
	BallVelocityX float32 = 75.0
	BallVelocityY float32 = 50.0

	// BounceSpeedIncrement is added to each velocity axis per paddle bounce
	BounceSpeedIncrement float32 = 5.0
)

// Timers (seconds)
const (
	// BounceCooldown suppresses repeated paddle bounces while the ball overlaps
	BounceCooldown float32 = 0.5

	// RespawnDelay is the wait before a ball spawns at match start and after each point
	RespawnDelay float32 = 1.0
)

// Scoring
const (
	MaxScore = 999
)

// Input Bindings
const (
	AxisLeftPaddle  = "left_paddle"
	AxisRightPaddle = "right_paddle"
	ActionQuit      = "quit"
	ActionMute      = "mute"
)
