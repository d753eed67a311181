package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
)

// ErrEntityNotFound is returned when an operation targets an entity that is not alive
var ErrEntityNotFound = errors.New("entity not found")

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	entities     *orderedmap.OrderedMap[core.Entity, struct{}]

	Components ComponentStore
	Resources  *Resources
}

// NewWorld creates an empty world with default resources for the given configuration
func NewWorld(cfg *config.Config) *World {
	return &World{
		nextEntityID: 1,
		entities:     orderedmap.NewOrderedMap[core.Entity, struct{}](),
		Components:   newComponentStore(),
		Resources:    NewResources(cfg),
	}
}

// CreateEntity reserves a new live entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.entities.Set(id, struct{}{})
	return id
}

// DestroyEntity removes an entity and all its components
// Destroying an entity that is not alive is an invariant violation reported as ErrEntityNotFound
func (w *World) DestroyEntity(e core.Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.entities.Delete(e) {
		return fmt.Errorf("destroy entity %d: %w", e, ErrEntityNotFound)
	}
	for _, store := range w.Components.all() {
		store.Remove(e)
	}
	return nil
}

// Alive reports whether the entity exists
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.entities.Get(e)
	return ok
}

// Entities returns all live entities in creation order
func (w *World) Entities() []core.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]core.Entity, 0, w.entities.Len())
	for el := w.entities.Front(); el != nil; el = el.Next() {
		result = append(result, el.Key)
	}
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entities.Len()
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.entities = orderedmap.NewOrderedMap[core.Entity, struct{}]()
	for _, store := range w.Components.all() {
		store.Clear()
	}
}
