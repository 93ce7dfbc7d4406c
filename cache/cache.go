package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjbayer/prioritymap"
)

// ErrInvalidCapacity is returned by New when the configured capacity is not
// positive.
var ErrInvalidCapacity = errors.New("cache: capacity must be greater than 0")

// Storage defines the interface for a spill store holding evicted entries.
type Storage[K comparable, V any] interface {
	// Store writes an evicted entry together with its priority.
	Store(ctx context.Context, key K, value V, priority float64) error
	// Load reads an entry back; found is false when the key is absent.
	Load(ctx context.Context, key K) (value V, priority float64, found bool, err error)
	// Delete removes an entry after it has been re-admitted or dropped.
	Delete(ctx context.Context, key K) error
}

// Cache is a bounded collection of keyed entries ordered by priority.
// Entries past the capacity are evicted lowest-priority first, spilling to
// the configured Storage when one is set.
type Cache[K comparable, V any] struct {
	entries  *prioritymap.Map[float64, K, V]
	capacity int
	spill    Storage[K, V]
}

// New creates a cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) (*Cache[K, V], error) {
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	// The map orders with the comparison inverted so that Pop yields the
	// eviction victim: the entry with the lowest priority.
	return &Cache[K, V]{
		entries: prioritymap.NewFunc[float64, K, V](func(a, b float64) bool {
			return a > b
		}),
		capacity: o.capacity,
		spill:    o.spill,
	}, nil
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	return c.entries.Len()
}

// Put admits or updates an entry, evicting past capacity. When an eviction
// fails to spill, the victim stays resident and the error is returned.
func (c *Cache[K, V]) Put(ctx context.Context, key K, value V, priority float64) error {
	c.entries.Set(key, value, priority)
	return c.evict(ctx)
}

// Get returns the value stored under key. On a resident miss the spill
// store, when configured, is consulted; a hit there re-admits the entry
// with its original priority, which may in turn evict.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, true, nil
	}

	var zero V
	if c.spill == nil {
		return zero, false, nil
	}

	v, priority, found, err := c.spill.Load(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("cache: load %v: %w", key, err)
	}
	if !found {
		return zero, false, nil
	}
	if err := c.spill.Delete(ctx, key); err != nil {
		return zero, false, fmt.Errorf("cache: delete %v: %w", key, err)
	}

	c.entries.Set(key, v, priority)
	return v, true, c.evict(ctx)
}

// Touch replaces the priority of a resident entry. It reports whether the
// key was resident; spilled entries are not touched.
func (c *Cache[K, V]) Touch(key K, priority float64) bool {
	_, ok := c.entries.Reprioritize(key, priority)
	return ok
}

// Remove deletes an entry from the cache and, when configured, from the
// spill store. It returns the removed value when one was found.
func (c *Cache[K, V]) Remove(ctx context.Context, key K) (V, bool, error) {
	if v, ok := c.entries.Remove(key); ok {
		return v, true, nil
	}

	var zero V
	if c.spill == nil {
		return zero, false, nil
	}

	v, _, found, err := c.spill.Load(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("cache: load %v: %w", key, err)
	}
	if !found {
		return zero, false, nil
	}
	if err := c.spill.Delete(ctx, key); err != nil {
		return zero, false, fmt.Errorf("cache: delete %v: %w", key, err)
	}
	return v, true, nil
}

// evict pops lowest-priority entries until the cache fits its capacity,
// spilling each victim before it is dropped.
func (c *Cache[K, V]) evict(ctx context.Context) error {
	for c.entries.Len() > c.capacity {
		key, value, ok := c.entries.Peek()
		if !ok {
			return nil
		}
		if c.spill != nil {
			priority, _ := c.entries.Priority(key)
			if err := c.spill.Store(ctx, key, value, priority); err != nil {
				return fmt.Errorf("cache: spill %v: %w", key, err)
			}
		}
		c.entries.Pop()
	}
	return nil
}
