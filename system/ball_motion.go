package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// BallMotionSystem integrates ball positions; boundaries are handled by later systems
type BallMotionSystem struct {
	world *engine.World

	ballStore      *engine.Store[component.BallComponent]
	transformStore *engine.Store[component.TransformComponent]
}

// NewBallMotionSystem creates a ball motion system
func NewBallMotionSystem(world *engine.World) engine.System {
	return &BallMotionSystem{
		world:          world,
		ballStore:      world.Components.Ball,
		transformStore: world.Components.Transform,
	}
}

// Name returns system's name
func (s *BallMotionSystem) Name() string {
	return "ball_motion"
}

// Priority returns the system's priority
func (s *BallMotionSystem) Priority() int {
	return parameter.PriorityBallMotion
}

// Update advances every ball by velocity * dt
func (s *BallMotionSystem) Update() {
	dt := s.world.Resources.Time.Delta()

	entities := s.world.Query().
		With(s.ballStore).
		With(s.transformStore).
		Execute()

	for _, e := range entities {
		ball, _ := s.ballStore.Get(e)
		transform, _ := s.transformStore.Get(e)

		transform.Position = transform.Position.Add(ball.Velocity.Mul(dt))
		s.transformStore.Set(e, transform)
	}
}
