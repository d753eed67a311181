package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(2, 20)

	assert.Equal(t, []core.Entity{3, 1, 2}, s.All())

	// Update keeps the slot, removal keeps the order of the rest
	s.Set(3, 31)
	s.Remove(1)
	assert.Equal(t, []core.Entity{3, 2}, s.All())

	v, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, 31, v)

	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.All())
}

func TestWorldCreateDestroy(t *testing.T) {
	w := NewWorld(nil)

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, []core.Entity{e1, e2}, w.Entities())

	w.Components.Transform.Set(e1, component.TransformComponent{Position: mgl32.Vec2{1, 2}})
	w.Components.Ball.Set(e1, component.BallComponent{Radius: 2})

	require.NoError(t, w.DestroyEntity(e1))
	assert.False(t, w.Alive(e1))
	assert.True(t, w.Alive(e2))
	assert.False(t, w.Components.Transform.Has(e1), "components detached on destroy")
	assert.False(t, w.Components.Ball.Has(e1))
	assert.Equal(t, 1, w.EntityCount())
}

func TestWorldDestroyMissingEntity(t *testing.T) {
	w := NewWorld(nil)
	e := w.CreateEntity()
	require.NoError(t, w.DestroyEntity(e))

	err := w.DestroyEntity(e)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.ErrorIs(t, w.DestroyEntity(core.Entity(42)), ErrEntityNotFound)
}

func TestWorldClear(t *testing.T) {
	w := NewWorld(nil)
	e := w.CreateEntity()
	w.Components.Paddle.Set(e, component.PaddleComponent{Side: core.SideLeft})

	w.Clear()
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.Components.Paddle.Count())
	assert.Equal(t, core.Entity(1), w.CreateEntity(), "ids restart after clear")
}

// TestQueryBuilder verifies joins keep the first store's order
func TestQueryBuilder(t *testing.T) {
	w := NewWorld(nil)

	e1 := w.CreateEntity()
	w.Components.Transform.Set(e1, component.TransformComponent{})
	w.Components.Ball.Set(e1, component.BallComponent{})

	e2 := w.CreateEntity()
	w.Components.Transform.Set(e2, component.TransformComponent{})

	e3 := w.CreateEntity()
	w.Components.Ball.Set(e3, component.BallComponent{})
	w.Components.Transform.Set(e3, component.TransformComponent{})

	results := w.Query().
		With(w.Components.Ball).
		With(w.Components.Transform).
		Execute()
	assert.Equal(t, []core.Entity{e1, e3}, results)

	transforms := w.Query().With(w.Components.Transform).Execute()
	assert.Len(t, transforms, 3)

	assert.Empty(t, w.Query().Execute())

	q := w.Query().With(w.Components.Paddle)
	first := q.Execute()
	assert.Equal(t, first, q.Execute(), "re-execution returns cached result")
}

func TestQueryBuilderPanicsAfterExecute(t *testing.T) {
	w := NewWorld(nil)
	q := w.Query()
	q.Execute()
	assert.Panics(t, func() { q.With(w.Components.Ball) })
}

func TestEntityBuilder(t *testing.T) {
	w := NewWorld(nil)

	eb := With(
		With(w.NewEntity(), w.Components.Transform, component.TransformComponent{Position: mgl32.Vec2{5, 6}}),
		w.Components.Paddle, component.PaddleComponent{Side: core.SideRight, Width: 4, Height: 16},
	)
	assert.Equal(t, 0, w.EntityCount(), "nothing committed before Build")

	e := eb.Build()
	assert.True(t, w.Alive(e))

	tr, ok := w.Components.Transform.Get(e)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{5, 6}, tr.Position)

	p, ok := w.Components.Paddle.Get(e)
	require.True(t, ok)
	assert.Equal(t, core.SideRight, p.Side)

	assert.Panics(t, func() { eb.Build() })
	assert.Panics(t, func() { With(eb, w.Components.Ball, component.BallComponent{}) })
}

func TestScoreBoardClamp(t *testing.T) {
	sb := NewScoreBoard(3)
	for i := 0; i < 10; i++ {
		sb.Add(core.SideLeft)
	}
	assert.Equal(t, 3, sb.Get(core.SideLeft))
	assert.Equal(t, 0, sb.Get(core.SideRight))
	assert.Equal(t, 1, sb.Add(core.SideRight))
}
