package engine

import "github.com/lixenwraith/vi-pong/core"

// EntityBuilder collects components for a new entity and commits them together on Build()
//
// Example usage:
//
//	entity := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Transform, transform),
//	    world.Components.Ball, ball,
//	).Build()
type EntityBuilder struct {
	world   *World
	pending []func(core.Entity)
	built   bool
}

// NewEntity starts building an entity; no ID is reserved until Build()
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{world: w}
}

// With queues a component of type T for the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.pending = append(eb.pending, func(e core.Entity) {
		store.Set(e, component)
	})
	return eb
}

// Build creates the entity and attaches every queued component.
// Panics if called twice.
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built - Build() called twice")
	}
	eb.built = true

	e := eb.world.CreateEntity()
	for _, attach := range eb.pending {
		attach(e)
	}
	eb.pending = nil
	return e
}
