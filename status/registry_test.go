package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	ticks := r.Ints.Get(KeyTicks)
	ticks.Add(3)
	assert.Same(t, ticks, r.Ints.Get(KeyTicks))
	assert.Equal(t, int64(3), r.Ints.Get(KeyTicks).Load())

	r.Floats.Get(KeyTickSeconds).Set(0.25)
	r.Floats.Get(KeyTickSeconds).Add(0.25)
	assert.InDelta(t, 0.5, r.Floats.Get(KeyTickSeconds).Get(), 1e-9)

	assert.Equal(t, 2, r.TotalCount())
	assert.True(t, r.Ints.Has(KeyTicks))
	assert.False(t, r.Ints.Has(KeyBounces))
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(10)
	r.Ints.Get(KeyBounces).Store(2)
	r.Floats.Get(KeyTickSeconds).Set(0.5)

	assert.Equal(t, []string{
		"ball.bounces=2",
		"engine.ticks=10",
		"engine.tick_seconds=0.5000",
	}, r.Lines())
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 0.2, f.Max(0.2))
	assert.Equal(t, 0.2, f.Max(0.1))
	assert.Equal(t, 0.3, f.Max(0.3))
}
