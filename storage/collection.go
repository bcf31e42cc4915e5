package storage

import (
	"sync"

	"github.com/google/uuid"

	"socialgraph/core"
	"socialgraph/metrics"
)

// Collection holds one entity kind in insertion order with an id index.
// Every exported method takes the collection lock, so individual calls
// are atomic; sequences of calls are not.
type Collection[T Entity] struct {
	kind   string
	noun   string
	assign func(T, string) T

	mu    sync.RWMutex
	items []T
	index map[string]int
}

// NewCollection creates an empty collection. kind labels metrics, noun
// is the human-readable entity name used in not-found reasons, and
// assign stamps a fresh id onto a payload during Create.
func NewCollection[T Entity](kind, noun string, assign func(T, string) T) *Collection[T] {
	return &Collection[T]{
		kind:   kind,
		noun:   noun,
		assign: assign,
		index:  make(map[string]int),
	}
}

// FindMany returns all entities matching the filter in insertion
// order. A nil filter returns everything. Never fails.
func (c *Collection[T]) FindMany(f *Filter) []T {
	metrics.StoreLookups.WithLabelValues(c.kind).Inc()

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindOne returns the first entity matching the filter, false when
// nothing matches. Never fails.
func (c *Collection[T]) FindOne(f *Filter) (T, bool) {
	metrics.StoreLookups.WithLabelValues(c.kind).Inc()

	c.mu.RLock()
	defer c.mu.RUnlock()

	// Fast path for id equality.
	if f != nil && f.Op == Equals && f.Key == "id" {
		if i, ok := c.index[f.Value]; ok {
			return c.items[i], true
		}
		var zero T
		return zero, false
	}

	for _, item := range c.items {
		if f.Matches(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns a fresh unique id, appends the entity, and returns
// it. Never fails; validation happens before this call.
func (c *Collection[T]) Create(payload T) T {
	metrics.StoreMutations.WithLabelValues(c.kind, "create").Inc()

	item := c.assign(payload, uuid.NewString())

	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[item.EntityID()] = len(c.items)
	c.items = append(c.items, item)
	return item
}

// Insert appends an entity keeping its existing id. Used for seeding
// fixed-id entities such as member types.
func (c *Collection[T]) Insert(item T) T {
	metrics.StoreMutations.WithLabelValues(c.kind, "create").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[item.EntityID()] = len(c.items)
	c.items = append(c.items, item)
	return item
}

// Change applies merge to the entity with the given id and stores the
// result. Fails with a NotFound-kinded error when the id is unknown.
func (c *Collection[T]) Change(id string, merge func(T) T) (T, error) {
	metrics.StoreMutations.WithLabelValues(c.kind, "change").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, core.NotFound(c.noun + " not found")
	}
	c.items[i] = merge(c.items[i])
	return c.items[i], nil
}

// Delete removes the entity with the given id and returns it, so the
// cascade engine knows what to clean up. Fails with a NotFound-kinded
// error when the id is unknown.
func (c *Collection[T]) Delete(id string) (T, error) {
	metrics.StoreMutations.WithLabelValues(c.kind, "delete").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, core.NotFound(c.noun + " not found")
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].EntityID()] = j
	}
	return removed, nil
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
