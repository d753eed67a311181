package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// WinnerSystem detects balls leaving through a goal edge and credits the opposite side
// The ball stays where it is; BallLifecycleSystem removes it on the Score event
type WinnerSystem struct {
	world *engine.World
	cfg   *config.Config
	bus   *event.Bus
	log   logrus.FieldLogger

	ballStore      *engine.Store[component.BallComponent]
	transformStore *engine.Store[component.TransformComponent]

	statScores *atomic.Int64
}

// NewWinnerSystem creates a scoring system
func NewWinnerSystem(world *engine.World) engine.System {
	return &WinnerSystem{
		world:          world,
		cfg:            world.Resources.Config,
		bus:            world.Resources.Events,
		log:            world.Resources.Log.WithField("system", "winner"),
		ballStore:      world.Components.Ball,
		transformStore: world.Components.Transform,
		statScores:     world.Resources.Status.Ints.Get(status.KeyScores),
	}
}

// Name returns system's name
func (s *WinnerSystem) Name() string {
	return "winner"
}

// Priority returns the system's priority
func (s *WinnerSystem) Priority() int {
	return parameter.PriorityWinner
}

// Update scores each ball past a goal edge exactly once
func (s *WinnerSystem) Update() {
	entities := s.world.Query().
		With(s.ballStore).
		With(s.transformStore).
		Execute()

	for _, e := range entities {
		ball, _ := s.ballStore.Get(e)
		if ball.Scored {
			continue
		}
		transform, _ := s.transformStore.Get(e)

		var side core.Side
		x := transform.Position.X()
		switch {
		case x <= ball.Radius:
			side = core.SideRight
		case x >= s.cfg.Area.Width-ball.Radius:
			side = core.SideLeft
		default:
			continue
		}

		points := s.world.Resources.Score.Add(side)
		ball.Scored = true
		s.ballStore.Set(e, ball)

		s.bus.Sound.Publish(core.SoundScore)
		s.bus.Game.Publish(event.Score(ball.ID, side))
		s.statScores.Add(1)

		s.log.WithFields(logrus.Fields{
			"ball":  ball.ID,
			"side":  side,
			"score": points,
		}).Info("point scored")
	}
}
