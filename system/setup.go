package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// Sinks are the front-end collaborators attached to a match; any may be nil
type Sinks struct {
	Input     engine.Input
	Sound     engine.SoundSink
	ScoreText engine.ScoreTextSink
}

// Match is a ready-to-run match: the world with its paddles and the scheduler driving it
type Match struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Lifecycle *BallLifecycleSystem
}

// Setup attaches sinks, places both paddles and registers every system
// The first ball is served once the respawn delay has elapsed
func Setup(world *engine.World, clock engine.Clock, sinks Sinks) *Match {
	res := world.Resources
	res.Input = sinks.Input
	res.Sound = sinks.Sound
	res.ScoreText = sinks.ScoreText

	SpawnPaddles(world)

	lifecycle := NewBallLifecycleSystem(world)
	scheduler := engine.NewScheduler(world, clock)
	for _, sys := range []engine.System{
		NewQuitSystem(world),
		NewPaddleSystem(world),
		NewBallMotionSystem(world),
		NewBounceSystem(world),
		NewWinnerSystem(world),
		NewVelocitySystem(world),
		lifecycle,
		NewScoreTextSystem(world),
		NewAudioSystem(world),
	} {
		scheduler.AddSystem(sys)
	}

	res.Log.WithField("systems", len(scheduler.Systems())).Info("match ready")

	return &Match{
		World:     world,
		Scheduler: scheduler,
		Lifecycle: lifecycle,
	}
}

// SpawnPaddles creates the left and right paddles centered vertically against their edges
func SpawnPaddles(world *engine.World) (left, right core.Entity) {
	cfg := world.Resources.Config
	w, h := cfg.Paddle.Width, cfg.Paddle.Height
	midY := cfg.Area.Height / 2

	spawn := func(side core.Side, x float32) core.Entity {
		return engine.With(
			engine.With(world.NewEntity(), world.Components.Transform,
				component.TransformComponent{Position: mgl32.Vec2{x, midY}}),
			world.Components.Paddle,
			component.PaddleComponent{Side: side, Width: w, Height: h},
		).Build()
	}

	left = spawn(core.SideLeft, w/2)
	right = spawn(core.SideRight, cfg.Area.Width-w/2)
	return left, right
}
