package system

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// BallLifecycleSystem removes scored balls and serves a new one after the respawn delay
//
// The countdown is armed at construction, so a match begins with no ball on the field.
// A countdown armed by a Score event starts running on the following tick.
type BallLifecycleSystem struct {
	world  *engine.World
	cfg    *config.Config
	bus    *event.Bus
	reader *event.Reader[event.GameEvent]
	log    logrus.FieldLogger

	ballStore      *engine.Store[component.BallComponent]
	transformStore *engine.Store[component.TransformComponent]

	countdown float32
	pending   bool

	statSpawns *atomic.Int64
}

// NewBallLifecycleSystem creates a lifecycle system with the first serve pending
func NewBallLifecycleSystem(world *engine.World) *BallLifecycleSystem {
	bus := world.Resources.Events
	cfg := world.Resources.Config
	return &BallLifecycleSystem{
		world:          world,
		cfg:            cfg,
		bus:            bus,
		reader:         bus.Game.Subscribe(),
		log:            world.Resources.Log.WithField("system", "ball_lifecycle"),
		ballStore:      world.Components.Ball,
		transformStore: world.Components.Transform,
		countdown:      cfg.Rules.RespawnDelay,
		pending:        true,
		statSpawns:     world.Resources.Status.Ints.Get(status.KeySpawns),
	}
}

// Name returns system's name
func (s *BallLifecycleSystem) Name() string {
	return "ball_lifecycle"
}

// Priority returns the system's priority
func (s *BallLifecycleSystem) Priority() int {
	return parameter.PriorityBallLifecycle
}

// Release unsubscribes from the game channel
func (s *BallLifecycleSystem) Release() {
	s.bus.Game.Unsubscribe(s.reader)
}

// Countdown returns the seconds left before the next serve, false when none is pending
func (s *BallLifecycleSystem) Countdown() (float32, bool) {
	return s.countdown, s.pending
}

// Update runs the countdown, then handles this tick's Score events
func (s *BallLifecycleSystem) Update() {
	if s.pending {
		s.countdown -= s.world.Resources.Time.Delta()
		if s.countdown <= 0 {
			s.spawn()
			s.pending = false
			s.countdown = 0
		}
	}

	for _, ev := range s.bus.Game.Read(s.reader) {
		if ev.Type != event.GameScore {
			continue
		}
		s.despawn(ev.Ball)
		s.countdown = s.cfg.Rules.RespawnDelay
		s.pending = true
	}
}

// despawn destroys the ball with the given id; a missing ball is an invariant violation
func (s *BallLifecycleSystem) despawn(id core.BallID) {
	for _, e := range s.ballStore.All() {
		ball, _ := s.ballStore.Get(e)
		if ball.ID != id {
			continue
		}
		if err := s.world.DestroyEntity(e); err != nil {
			panic(fmt.Errorf("despawn ball %s: %w", id, err))
		}
		s.log.WithField("ball", id).Debug("ball removed")
		return
	}
	panic(fmt.Errorf("despawn ball %s: %w", id, engine.ErrEntityNotFound))
}

// spawn serves a fresh ball from the center at base velocity
func (s *BallLifecycleSystem) spawn() {
	velocity := mgl32.Vec2{s.cfg.Ball.VelocityX, s.cfg.Ball.VelocityY}
	ball := component.BallComponent{
		ID:               core.NewBallID(),
		Radius:           s.cfg.Ball.Radius,
		Velocity:         velocity,
		OriginalVelocity: velocity,
	}
	center := component.TransformComponent{
		Position: mgl32.Vec2{s.cfg.Area.Width / 2, s.cfg.Area.Height / 2},
	}

	engine.With(
		engine.With(s.world.NewEntity(), s.transformStore, center),
		s.ballStore, ball,
	).Build()
	s.statSpawns.Add(1)

	s.log.WithField("ball", ball.ID).Debug("ball served")
}
