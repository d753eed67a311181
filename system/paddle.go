package system

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// PaddleSystem moves each paddle along its input axis, clamped to the play area
type PaddleSystem struct {
	world *engine.World
	cfg   *config.Config

	paddleStore    *engine.Store[component.PaddleComponent]
	transformStore *engine.Store[component.TransformComponent]
}

// NewPaddleSystem creates a paddle control system
func NewPaddleSystem(world *engine.World) engine.System {
	return &PaddleSystem{
		world:          world,
		cfg:            world.Resources.Config,
		paddleStore:    world.Components.Paddle,
		transformStore: world.Components.Transform,
	}
}

// Name returns system's name
func (s *PaddleSystem) Name() string {
	return "paddle"
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

// Update applies one tick of axis displacement
func (s *PaddleSystem) Update() {
	input := s.world.Resources.Input
	if input == nil {
		return
	}

	entities := s.world.Query().
		With(s.paddleStore).
		With(s.transformStore).
		Execute()

	for _, e := range entities {
		paddle, _ := s.paddleStore.Get(e)
		transform, _ := s.transformStore.Get(e)

		axis, ok := input.Axis(s.cfg.AxisFor(paddle.Side))
		if !ok || axis == 0 {
			continue
		}
		axis = math32.Max(-1, math32.Min(axis, 1))

		y := transform.Position.Y() + s.cfg.Paddle.Speed*axis
		transform.Position[1] = paddle.ClampY(y, s.cfg.Area.Height)
		s.transformStore.Set(e, transform)
	}
}
