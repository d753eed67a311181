package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// testDelta is exact in binary so countdown arithmetic lands on zero
const testDelta = 62500 * time.Microsecond

type fakeInput struct {
	axes    map[string]float32
	actions map[string]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{axes: make(map[string]float32), actions: make(map[string]bool)}
}

func (f *fakeInput) Axis(name string) (float32, bool) {
	v, ok := f.axes[name]
	return v, ok
}

func (f *fakeInput) ActionDown(name string) bool {
	return f.actions[name]
}

func (f *fakeInput) MousePosition() (float32, float32, bool) {
	return 0, 0, false
}

type recordingSound struct {
	played []core.Sound
	silent bool
}

func (r *recordingSound) Play(s core.Sound) bool {
	if r.silent {
		return false
	}
	r.played = append(r.played, s)
	return true
}

type recordingText map[core.Side]string

func (r recordingText) SetText(side core.Side, text string) {
	r[side] = text
}

func newTestWorld() *engine.World {
	return engine.NewWorld(config.Default())
}

func setDelta(w *engine.World, dt time.Duration) {
	w.Resources.Time.DeltaTime = dt
}

func spawnBall(w *engine.World, pos, vel mgl32.Vec2) (core.Entity, core.BallID) {
	id := core.NewBallID()
	e := engine.With(
		engine.With(w.NewEntity(), w.Components.Transform, component.TransformComponent{Position: pos}),
		w.Components.Ball, component.BallComponent{
			ID:               id,
			Radius:           w.Resources.Config.Ball.Radius,
			Velocity:         vel,
			OriginalVelocity: mgl32.Vec2{w.Resources.Config.Ball.VelocityX, w.Resources.Config.Ball.VelocityY},
		},
	).Build()
	return e, id
}

func ballOf(w *engine.World, e core.Entity) component.BallComponent {
	b, _ := w.Components.Ball.Get(e)
	return b
}

func positionOf(w *engine.World, e core.Entity) mgl32.Vec2 {
	t, _ := w.Components.Transform.Get(e)
	return t.Position
}
