package system

import (
	"slices"
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

// BounceSystem reflects balls off the top/bottom walls and the paddles
//
// Paddle bounces are rate limited per ball by a cool-down so that a ball overlapping
// a paddle for several ticks flips direction and raises events only once.
// A ball seen for the first time inherits the match-start timer, which runs from
// system creation whether or not a ball is in play
type BounceSystem struct {
	world *engine.World
	cfg   *config.Config
	bus   *event.Bus
	log   logrus.FieldLogger

	ballStore      *engine.Store[component.BallComponent]
	paddleStore    *engine.Store[component.PaddleComponent]
	transformStore *engine.Store[component.TransformComponent]

	// Remaining cool-down in seconds per ball; positive blocks paddle bounces
	cooldowns map[core.BallID]float32

	// Match-start cool-down, seeds balls not yet tracked
	startCooldown float32

	statBounces *atomic.Int64
}

type paddleBody struct {
	paddle   component.PaddleComponent
	position mgl32.Vec2
}

// NewBounceSystem creates a bounce/collision system
func NewBounceSystem(world *engine.World) engine.System {
	return &BounceSystem{
		world:          world,
		cfg:            world.Resources.Config,
		bus:            world.Resources.Events,
		log:            world.Resources.Log.WithField("system", "bounce"),
		ballStore:      world.Components.Ball,
		paddleStore:    world.Components.Paddle,
		transformStore: world.Components.Transform,
		cooldowns:      make(map[core.BallID]float32),
		startCooldown:  world.Resources.Config.Rules.BounceCooldown,
		statBounces:    world.Resources.Status.Ints.Get(status.KeyBounces),
	}
}

// Name returns system's name
func (s *BounceSystem) Name() string {
	return "bounce"
}

// Priority returns the system's priority
func (s *BounceSystem) Priority() int {
	return parameter.PriorityBounce
}

// Update checks every ball against walls and paddles
func (s *BounceSystem) Update() {
	dt := s.world.Resources.Time.Delta()
	s.startCooldown -= dt
	paddles := s.paddles()

	balls := s.world.Query().
		With(s.ballStore).
		With(s.transformStore).
		Execute()

	seen := make(map[core.BallID]struct{}, len(balls))
	for _, e := range balls {
		ball, _ := s.ballStore.Get(e)
		transform, _ := s.transformStore.Get(e)
		seen[ball.ID] = struct{}{}

		cooldown, ok := s.cooldowns[ball.ID]
		if ok {
			cooldown -= dt
		} else {
			cooldown = s.startCooldown
		}

		s.bounceWalls(&ball, transform.Position)
		cooldown = s.bouncePaddles(&ball, transform.Position, paddles, cooldown)

		s.cooldowns[ball.ID] = cooldown
		s.ballStore.Set(e, ball)
	}

	for id := range s.cooldowns {
		if _, ok := seen[id]; !ok {
			delete(s.cooldowns, id)
		}
	}
}

// bounceWalls negates vy at the top/bottom edge only while the ball still moves outward
func (s *BounceSystem) bounceWalls(ball *component.BallComponent, pos mgl32.Vec2) {
	y, vy := pos.Y(), ball.Velocity.Y()
	if (y <= ball.Radius && vy < 0) || (y >= s.cfg.Area.Height-ball.Radius && vy > 0) {
		ball.Velocity[1] = -vy
	}
}

// bouncePaddles reflects vx off the first paddle whose radius-expanded bounds hold the ball center
// Returns the updated cool-down
func (s *BounceSystem) bouncePaddles(ball *component.BallComponent, pos mgl32.Vec2, paddles []paddleBody, cooldown float32) float32 {
	for _, body := range paddles {
		if !body.paddle.Bounds(body.position, ball.Radius).Contains(pos) {
			continue
		}
		if cooldown > 0 {
			return cooldown
		}

		ball.Velocity[0] = -ball.Velocity.X()
		s.bus.Sound.Publish(core.SoundBounce)
		s.bus.Game.Publish(event.Bounce(ball.ID))
		s.statBounces.Add(1)

		s.log.WithFields(logrus.Fields{
			"ball": ball.ID,
			"side": body.paddle.Side,
		}).Debug("paddle bounce")

		return s.cfg.Rules.BounceCooldown
	}
	return cooldown
}

// paddles returns paddle bodies, left side first
func (s *BounceSystem) paddles() []paddleBody {
	entities := s.world.Query().
		With(s.paddleStore).
		With(s.transformStore).
		Execute()

	bodies := make([]paddleBody, 0, len(entities))
	for _, e := range entities {
		paddle, _ := s.paddleStore.Get(e)
		transform, _ := s.transformStore.Get(e)
		bodies = append(bodies, paddleBody{paddle: paddle, position: transform.Position})
	}

	slices.SortStableFunc(bodies, func(a, b paddleBody) int {
		return int(a.paddle.Side) - int(b.paddle.Side)
	})
	return bodies
}
