package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// recordingSystem appends its name to a shared trace on every update
type recordingSystem struct {
	name     string
	priority int
	trace    *[]string
	panicAt  int
	calls    int
	onUpdate func()
	released int
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Release() { s.released++ }

func (s *recordingSystem) Update() {
	s.calls++
	*s.trace = append(*s.trace, s.name)
	if s.onUpdate != nil {
		s.onUpdate()
	}
	if s.panicAt > 0 && s.calls == s.panicAt {
		panic("invariant violated")
	}
}

func TestSchedulerPriorityOrder(t *testing.T) {
	w := NewWorld(nil)
	sched := NewScheduler(w, NewManualClock(time.Unix(0, 0)))

	var trace []string
	sched.AddSystem(&recordingSystem{name: "c", priority: 30, trace: &trace})
	sched.AddSystem(&recordingSystem{name: "a", priority: 10, trace: &trace})
	sched.AddSystem(&recordingSystem{name: "b1", priority: 20, trace: &trace})
	sched.AddSystem(&recordingSystem{name: "b2", priority: 20, trace: &trace})

	sched.Tick(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, trace, "equal priorities keep registration order")
	assert.Len(t, sched.Systems(), 4)
}

func TestSchedulerTimeResource(t *testing.T) {
	w := NewWorld(nil)
	sched := NewScheduler(w, nil)

	sched.Tick(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, w.Resources.Time.DeltaTime)
	assert.InDelta(t, 0.02, w.Resources.Time.Delta(), 1e-6)
	assert.Equal(t, int64(1), w.Resources.Time.Tick)

	sched.Tick(time.Hour)
	assert.Equal(t, parameter.MaxTickDelta, w.Resources.Time.DeltaTime, "stall capped")
	assert.Equal(t, int64(2), w.Resources.Time.Tick)

	sched.Tick(-time.Second)
	assert.Equal(t, time.Duration(0), w.Resources.Time.DeltaTime)
}

func TestSchedulerHaltsPanickingSystem(t *testing.T) {
	w := NewWorld(nil)
	sched := NewScheduler(w, nil)

	var trace []string
	bad := &recordingSystem{name: "bad", priority: 10, trace: &trace, panicAt: 1}
	good := &recordingSystem{name: "good", priority: 20, trace: &trace}
	sched.AddSystem(bad)
	sched.AddSystem(good)

	require.NotPanics(t, func() { sched.Tick(time.Millisecond) })
	sched.Tick(time.Millisecond)

	assert.True(t, sched.Halted("bad"))
	assert.False(t, sched.Halted("good"))
	assert.Equal(t, 1, bad.calls, "halted system never runs again")
	assert.Equal(t, 2, good.calls, "other systems keep running")
	assert.Equal(t, 1, bad.released, "halted system releases its readers once")
	assert.Equal(t, 0, good.released)
	assert.Equal(t, int64(1), w.Resources.Status.Ints.Get(status.KeyHalted).Load())
}

func TestSchedulerRunStopsOnQuit(t *testing.T) {
	w := NewWorld(nil)
	sched := NewScheduler(w, nil)

	var trace []string
	sys := &recordingSystem{name: "sys", priority: 0, trace: &trace}
	sys.onUpdate = func() {
		if sys.calls == 3 {
			w.Resources.Match.QuitRequested.Store(true)
		}
	}
	sched.AddSystem(sys)

	frames := 0
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := sched.Run(ctx, time.Millisecond, func() { frames++ })
	require.NoError(t, err)
	assert.Equal(t, 3, sys.calls)
	assert.Equal(t, 3, frames)
}

func TestSchedulerRunCancelled(t *testing.T) {
	w := NewWorld(nil)
	sched := NewScheduler(w, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sched.Run(ctx, time.Hour, nil), context.Canceled)
}

// TestSchedulerRunMeasuresClockDeltas verifies Run feeds each tick the clock time since the previous one
func TestSchedulerRunMeasuresClockDeltas(t *testing.T) {
	w := NewWorld(nil)
	clock := NewManualClock(time.Unix(100, 0))
	sched := NewScheduler(w, clock)

	var trace []string
	var deltas []time.Duration
	sys := &recordingSystem{name: "sys", trace: &trace}
	sys.onUpdate = func() {
		deltas = append(deltas, w.Resources.Time.DeltaTime)
		if sys.calls == 4 {
			w.Resources.Match.QuitRequested.Store(true)
		}
	}
	sched.AddSystem(sys)

	steps := []time.Duration{16 * time.Millisecond, time.Hour, -time.Second}
	frame := 0
	afterTick := func() {
		if frame < len(steps) {
			clock.Advance(steps[frame])
		}
		frame++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sched.Run(ctx, time.Millisecond, afterTick))

	assert.Equal(t, []time.Duration{
		0,
		16 * time.Millisecond,
		parameter.MaxTickDelta,
		0,
	}, deltas, "first tick has no elapsed time, stalls are capped, a stopped clock yields zero")
	assert.Equal(t, time.Unix(100, 0).Add(16*time.Millisecond+time.Hour), clock.Now(), "negative advance ignored")
}
