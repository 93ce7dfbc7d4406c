package watch

import (
	"sync/atomic"

	"github.com/jjbayer/prioritymap"
)

// DefaultBuffer is the event channel capacity used when New is given a
// non-positive buffer size.
const DefaultBuffer = 64

// Op identifies the kind of mutation an Event reports.
type Op int

const (
	OpSet Op = iota
	OpPop
	OpRemove
	OpReprioritize
)

// String returns a human-readable name for the operation.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpPop:
		return "pop"
	case OpRemove:
		return "remove"
	case OpReprioritize:
		return "reprioritize"
	default:
		return "unknown"
	}
}

// Event describes a single mutation of the wrapped map.
type Event[K comparable] struct {
	Op  Op
	Key K
}

// Map wraps a prioritymap.Map and emits an Event for every successful
// mutation. Read-only operations pass through untouched.
type Map[P any, K comparable, V any] struct {
	inner   *prioritymap.Map[P, K, V]
	events  chan Event[K]
	dropped atomic.Uint64
}

// New wraps m with an event channel of the given capacity. A non-positive
// buffer falls back to DefaultBuffer.
func New[P any, K comparable, V any](m *prioritymap.Map[P, K, V], buffer int) *Map[P, K, V] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Map[P, K, V]{
		inner:  m,
		events: make(chan Event[K], buffer),
	}
}

// Events returns the channel mutation events are delivered on.
func (m *Map[P, K, V]) Events() <-chan Event[K] {
	return m.events
}

// Dropped returns how many events were discarded because the buffer was full.
func (m *Map[P, K, V]) Dropped() uint64 {
	return m.dropped.Load()
}

// Set adds or updates an entry and emits an OpSet event.
func (m *Map[P, K, V]) Set(key K, value V, priority P) {
	m.inner.Set(key, value, priority)
	m.emit(Event[K]{Op: OpSet, Key: key})
}

// Pop removes and returns the highest-priority entry, emitting an OpPop
// event when an entry was removed.
func (m *Map[P, K, V]) Pop() (K, V, bool) {
	key, value, ok := m.inner.Pop()
	if ok {
		m.emit(Event[K]{Op: OpPop, Key: key})
	}
	return key, value, ok
}

// Remove removes the entry stored under key, emitting an OpRemove event
// when the key was present.
func (m *Map[P, K, V]) Remove(key K) (V, bool) {
	value, ok := m.inner.Remove(key)
	if ok {
		m.emit(Event[K]{Op: OpRemove, Key: key})
	}
	return value, ok
}

// Reprioritize replaces the priority of key, emitting an OpReprioritize
// event when the key was present.
func (m *Map[P, K, V]) Reprioritize(key K, priority P) (P, bool) {
	old, ok := m.inner.Reprioritize(key, priority)
	if ok {
		m.emit(Event[K]{Op: OpReprioritize, Key: key})
	}
	return old, ok
}

// Peek returns the highest-priority entry without removing it.
func (m *Map[P, K, V]) Peek() (K, V, bool) {
	return m.inner.Peek()
}

// Get returns the value stored under key.
func (m *Map[P, K, V]) Get(key K) (V, bool) {
	return m.inner.Get(key)
}

// Priority returns the current priority of key.
func (m *Map[P, K, V]) Priority(key K) (P, bool) {
	return m.inner.Priority(key)
}

// Len returns the number of entries in the map.
func (m *Map[P, K, V]) Len() int {
	return m.inner.Len()
}

func (m *Map[P, K, V]) emit(e Event[K]) {
	select {
	case m.events <- e:
	default:
		m.dropped.Add(1)
	}
}
