package event

import "github.com/lixenwraith/vi-pong/core"

// GameEventType discriminates the GameEvent union
type GameEventType int

const (
	// GameBounce signals a ball reflected off a paddle
	// Trigger: BounceSystem | Consumer: VelocitySystem | Payload: Ball
	GameBounce GameEventType = iota

	// GameScore signals a ball crossed a goal line
	// Trigger: WinnerSystem | Consumer: VelocitySystem, BallLifecycleSystem, ScoreTextSystem | Payload: Ball, Side
	GameScore
)

// String returns the name of the event type for debugging
func (t GameEventType) String() string {
	switch t {
	case GameBounce:
		return "Bounce"
	case GameScore:
		return "Score"
	default:
		return "Unknown"
	}
}

// GameEvent is a gameplay notification
// Ball is set for both variants; Side is the scoring side and only meaningful for GameScore
type GameEvent struct {
	Type GameEventType
	Ball core.BallID
	Side core.Side
}

// Bounce builds a GameBounce event for the given ball
func Bounce(ball core.BallID) GameEvent {
	return GameEvent{Type: GameBounce, Ball: ball}
}

// Score builds a GameScore event for the ball that left the area and the side credited
func Score(ball core.BallID, side core.Side) GameEvent {
	return GameEvent{Type: GameScore, Ball: ball, Side: side}
}

// Bus groups the channels shared by all systems
type Bus struct {
	Sound *Channel[core.Sound]
	Game  *Channel[GameEvent]
}

// NewBus creates empty sound and game channels
func NewBus() *Bus {
	return &Bus{
		Sound: NewChannel[core.Sound](),
		Game:  NewChannel[GameEvent](),
	}
}
