package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/core"
)

// BallComponent is the moving ball
// OriginalVelocity keeps the spawn magnitude so a point can reset escalated speed
type BallComponent struct {
	ID               core.BallID
	Radius           float32
	Velocity         mgl32.Vec2
	OriginalVelocity mgl32.Vec2

	// Scored is set once the ball crossed a goal line; cleared only by removal
	Scored bool
}

// Direction returns the per-axis sign of the current velocity, zero counting as negative
func (b BallComponent) Direction() mgl32.Vec2 {
	return mgl32.Vec2{sign(b.Velocity.X()), sign(b.Velocity.Y())}
}

func sign(v float32) float32 {
	if v > 0 {
		return 1
	}
	return -1
}
