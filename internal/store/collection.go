package store

import "sync"

// Collection is an insertion-ordered, id-keyed in-memory record set.
// Ids are assigned on insert as max existing id + 1 (1 when empty), so
// they stay unique even after deletions. All methods are safe for
// concurrent use.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) int
	setID func(*T, int)
}

// NewCollection builds a collection over records whose id is read with
// idOf and assigned with setID.
func NewCollection[T any](idOf func(T) int, setID func(*T, int)) *Collection[T] {
	return &Collection[T]{id: idOf, setID: setID}
}

// Insert assigns the next id to item, appends it and returns the id.
func (c *Collection[T]) Insert(item T) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := 1
	for _, it := range c.items {
		if id := c.id(it); id >= next {
			next = id + 1
		}
	}
	c.setID(&item, next)
	c.items = append(c.items, item)
	return next
}

// Seed appends an item keeping its preassigned id. Intended for fixture
// loading only; it does not check uniqueness.
func (c *Collection[T]) Seed(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Update applies mutate to the record with the given id.
func (c *Collection[T]) Update(id int, mutate func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			mutate(&c.items[i])
			return true
		}
	}
	return false
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
