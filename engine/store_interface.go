package engine

import (
	"github.com/lixenwraith/vi-pong/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the listing needed to drive a query
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
