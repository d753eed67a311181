// Package status holds lock-free telemetry counters written by systems and read by the front end
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks       = "engine.ticks"
	KeyHalted      = "engine.halted"
	KeyTickSeconds = "engine.tick_seconds"
	KeyBounces     = "ball.bounces"
	KeySpawns      = "ball.spawns"
	KeyScores      = "match.points"
	KeySoundsSent  = "audio.played"
	KeySoundsLost  = "audio.dropped"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines renders every metric as "key=value" in key order, ints first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.4f", key, v.Get()))
	})
	return lines
}
