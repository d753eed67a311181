package engine

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// Store is a generic container for a specific component type T
// Iteration follows insertion order; removal keeps the order of the rest
type Store[T any] struct {
	mu         sync.RWMutex
	components *orderedmap.OrderedMap[core.Entity, T]
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: orderedmap.NewOrderedMap[core.Entity, T](),
	}
}

// Set inserts or updates a component for an entity
// Updating keeps the entity's original iteration slot
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components.Set(e, val)
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.components.Get(e)
}

// Remove deletes the component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components.Delete(e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components.Get(e)
	return ok
}

// All returns all entities with this component type in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]core.Entity, 0, s.components.Len())
	for el := s.components.Front(); el != nil; el = el.Next() {
		result = append(result, el.Key)
	}
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.components.Len()
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = orderedmap.NewOrderedMap[core.Entity, T]()
}
