package event

import (
	"sync"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Reader is a subscriber cursor into a Channel
// Holds only an absolute read position, never a copy of unread history
type Reader[T any] struct {
	cursor uint64
}

// Channel is an append-only event log with independent per-reader cursors
//
// Positions are absolute: base is the position of log[0]. Once every reader
// has passed a prefix of the log it is dropped, so with all readers serviced
// each tick the log is empty at the start of the next one.
//
// Thread-Safety: all methods are guarded; the simulation is single-threaded but
// the front end may inspect Len between ticks
type Channel[T any] struct {
	mu      sync.Mutex
	log     []T
	base    uint64
	readers []*Reader[T]
}

// NewChannel creates an empty channel
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{
		log: make([]T, 0, parameter.EventLogInitialCapacity),
	}
}

// Publish appends an event to the log
func (c *Channel[T]) Publish(ev T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.readers) == 0 {
		c.base++
		return
	}
	c.log = append(c.log, ev)
}

// Subscribe registers a reader positioned at the current end of the log
// Events published before subscription are never delivered to it
func (c *Channel[T]) Subscribe() *Reader[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := &Reader[T]{cursor: c.base + uint64(len(c.log))}
	c.readers = append(c.readers, r)
	return r
}

// Unsubscribe releases a reader so it no longer holds back compaction
func (c *Channel[T]) Unsubscribe(r *Reader[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.readers {
		if existing == r {
			c.readers = append(c.readers[:i], c.readers[i+1:]...)
			break
		}
	}
	c.compact()
}

// Read returns all events published since the reader's last read, in publish order,
// and advances the reader past them. Returns nil when nothing is pending
func (c *Channel[T]) Read(r *Reader[T]) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.base + uint64(len(c.log))
	if r.cursor >= end {
		return nil
	}

	start := r.cursor - c.base
	result := make([]T, len(c.log)-int(start))
	copy(result, c.log[start:])
	r.cursor = end

	c.compact()
	return result
}

// Len returns the number of events still retained in the log
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.log)
}

// Pending returns how many events the reader has not yet read
func (c *Channel[T]) Pending(r *Reader[T]) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.base + uint64(len(c.log)) - r.cursor)
}

// compact drops the log prefix that every reader has already consumed
// With no readers the whole log is dropped; nobody can ever read it
func (c *Channel[T]) compact() {
	end := c.base + uint64(len(c.log))
	low := end
	for _, r := range c.readers {
		if r.cursor < low {
			low = r.cursor
		}
	}

	drop := int(low - c.base)
	if drop == 0 {
		return
	}

	if drop == len(c.log) {
		clear(c.log)
		c.log = c.log[:0]
	} else {
		remaining := copy(c.log, c.log[drop:])
		clear(c.log[remaining:])
		c.log = c.log[:remaining]
	}
	c.base = low
}
