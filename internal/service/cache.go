package service

import "sync"

// ListCache is the per-session snapshot of one table's full fetch. There is
// no eviction policy: the whole snapshot is dropped on any mutation and
// rebuilt on the next read.
type ListCache[T any] struct {
	mu      sync.RWMutex
	items   []T
	isValid bool
}

func NewListCache[T any]() *ListCache[T] {
	return &ListCache[T]{}
}

// Get returns the cached snapshot, or ok=false when invalidated.
func (c *ListCache[T]) Get() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.isValid {
		return nil, false
	}
	return c.items, true
}

// Set replaces the snapshot.
func (c *ListCache[T]) Set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.isValid = true
}

// Invalidate drops the snapshot. Called once per mutation, and once at the
// end of a whole enhancement batch rather than per record.
func (c *ListCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.isValid = false
}
