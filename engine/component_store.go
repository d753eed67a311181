package engine

import (
	"github.com/lixenwraith/vi-pong/component"
)

// ComponentStore holds the typed store of every component kind
// Pointers are created once with the world and stay valid for its lifetime
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Paddle    *Store[component.PaddleComponent]
	Ball      *Store[component.BallComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Paddle:    NewStore[component.PaddleComponent](),
		Ball:      NewStore[component.BallComponent](),
	}
}

// all lists every store for uniform cleanup
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Transform, c.Paddle, c.Ball}
}
