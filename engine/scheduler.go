package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// sentryFlushTimeout bounds the wait for a halt report to leave the process
const sentryFlushTimeout = 2 * time.Second

type scheduledSystem struct {
	system System
	halted bool
}

// Scheduler runs registered systems strictly sequentially once per tick, in priority order
// A system that panics is halted for the rest of the match; the others keep running
type Scheduler struct {
	world   *World
	clock   Clock
	systems []*scheduledSystem

	statTicks   *atomic.Int64
	statHalted  *atomic.Int64
	statSlowest *status.AtomicFloat
}

// NewScheduler creates a scheduler for the world measuring deltas with clock
func NewScheduler(world *World, clock Clock) *Scheduler {
	if clock == nil {
		clock = NewTimeProvider()
	}
	reg := world.Resources.Status
	return &Scheduler{
		world:       world,
		clock:       clock,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statHalted:  reg.Ints.Get(status.KeyHalted),
		statSlowest: reg.Floats.Get(status.KeyTickSeconds),
	}
}

// AddSystem registers a system, keeping registration order among equal priorities
func (s *Scheduler) AddSystem(system System) {
	s.systems = append(s.systems, &scheduledSystem{system: system})

	// Insertion sort, small N, stable
	for i := len(s.systems) - 1; i > 0; i-- {
		if s.systems[i-1].system.Priority() <= s.systems[i].system.Priority() {
			break
		}
		s.systems[i-1], s.systems[i] = s.systems[i], s.systems[i-1]
	}
}

// Systems returns the registered systems in execution order
func (s *Scheduler) Systems() []System {
	result := make([]System, len(s.systems))
	for i, entry := range s.systems {
		result[i] = entry.system
	}
	return result
}

// Halted reports whether the named system was stopped after a failure
func (s *Scheduler) Halted(name string) bool {
	for _, entry := range s.systems {
		if entry.system.Name() == name {
			return entry.halted
		}
	}
	return false
}

// Tick advances the simulation by dt, capped at MaxTickDelta
func (s *Scheduler) Tick(dt time.Duration) {
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	if dt < 0 {
		dt = 0
	}

	timeRes := s.world.Resources.Time
	timeRes.DeltaTime = dt
	timeRes.Tick = s.statTicks.Add(1)

	start := s.clock.Now()
	for _, entry := range s.systems {
		if entry.halted {
			continue
		}
		s.runSystem(entry)
	}
	s.statSlowest.Max(s.clock.Now().Sub(start).Seconds())
}

// runSystem executes one system, converting a panic into a halt
func (s *Scheduler) runSystem(entry *scheduledSystem) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		entry.halted = true
		s.statHalted.Add(1)
		if rel, ok := entry.system.(Releaser); ok {
			rel.Release()
		}

		name := entry.system.Name()
		tick := s.world.Resources.Time.Tick
		s.world.Resources.Log.WithFields(logrus.Fields{
			"system": name,
			"tick":   tick,
		}).Errorf("system halted: %v", r)

		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("system", name)
			scope.SetTag("tick", fmt.Sprint(tick))
		})
		hub.Recover(r)
		hub.Flush(sentryFlushTimeout)
	}()

	entry.system.Update()
}

// Run ticks at the given interval until ctx is cancelled or quit is requested
// afterTick, if set, runs after every tick on the same goroutine (drawing)
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, afterTick func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := s.clock.Now()
			s.Tick(now.Sub(last))
			last = now

			if afterTick != nil {
				afterTick()
			}
			if s.world.Resources.Match.QuitRequested.Load() {
				return nil
			}
		}
	}
}
