package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// VelocitySystem speeds a ball up on every paddle bounce and resets all balls to base speed on a score
type VelocitySystem struct {
	world  *engine.World
	cfg    *config.Config
	bus    *event.Bus
	reader *event.Reader[event.GameEvent]

	ballStore *engine.Store[component.BallComponent]
}

// NewVelocitySystem creates a velocity escalation system
func NewVelocitySystem(world *engine.World) engine.System {
	bus := world.Resources.Events
	return &VelocitySystem{
		world:     world,
		cfg:       world.Resources.Config,
		bus:       bus,
		reader:    bus.Game.Subscribe(),
		ballStore: world.Components.Ball,
	}
}

// Name returns system's name
func (s *VelocitySystem) Name() string {
	return "velocity"
}

// Priority returns the system's priority
func (s *VelocitySystem) Priority() int {
	return parameter.PriorityVelocity
}

// Release unsubscribes from the game channel
func (s *VelocitySystem) Release() {
	s.bus.Game.Unsubscribe(s.reader)
}

// Update applies pending game events in publish order
func (s *VelocitySystem) Update() {
	for _, ev := range s.bus.Game.Read(s.reader) {
		switch ev.Type {
		case event.GameBounce:
			s.escalate(ev.Ball)
		case event.GameScore:
			s.reset()
		}
	}
}

// escalate adds the bounce increment along the ball's current direction on both axes
func (s *VelocitySystem) escalate(id core.BallID) {
	increment := s.cfg.Rules.BounceSpeedIncrement
	for _, e := range s.ballStore.All() {
		ball, _ := s.ballStore.Get(e)
		if ball.ID != id {
			continue
		}
		ball.Velocity = ball.Velocity.Add(ball.Direction().Mul(increment))
		s.ballStore.Set(e, ball)
		return
	}
}

// reset restores base speed on every ball, keeping its direction
// Base velocity components are non-negative, enforced by config validation
func (s *VelocitySystem) reset() {
	for _, e := range s.ballStore.All() {
		ball, _ := s.ballStore.Get(e)
		dir := ball.Direction()
		ball.Velocity = mgl32.Vec2{
			ball.OriginalVelocity.X() * dir.X(),
			ball.OriginalVelocity.Y() * dir.Y(),
		}
		s.ballStore.Set(e, ball)
	}
}
