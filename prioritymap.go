package prioritymap

import (
	"cmp"
	"iter"
)

// entry is a single (priority, key, value) triple stored in the heap.
type entry[P any, K comparable, V any] struct {
	priority P
	key      K
	value    V
}

// Map associates unique keys with values and mutable priorities. The
// highest-priority entry is available in O(1) via Peek and removable in
// O(log n) via Pop; any entry can be removed or reprioritized by key in
// O(log n).
//
// The zero value is not usable; create a Map with New or NewFunc.
type Map[P any, K comparable, V any] struct {
	heap  []entry[P, K, V]
	index map[K]int
	less  func(a, b P) bool
}

// New creates an empty map whose priorities are ordered by <. Peek and Pop
// return the entry with the greatest priority.
func New[P cmp.Ordered, K comparable, V any]() *Map[P, K, V] {
	return NewFunc[P, K, V](func(a, b P) bool { return a < b })
}

// NewFunc creates an empty map with a caller-supplied order. less reports
// whether a has lower priority than b; Peek and Pop return the entry with
// the highest priority under that order.
func NewFunc[P any, K comparable, V any](less func(a, b P) bool) *Map[P, K, V] {
	return &Map[P, K, V]{
		index: make(map[K]int),
		less:  less,
	}
}

// Len returns the number of entries in the map.
func (m *Map[P, K, V]) Len() int {
	return len(m.heap)
}

// Get returns the value stored under key.
func (m *Map[P, K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.heap[i].value, true
	}
	var zero V
	return zero, false
}

// Priority returns the current priority of key.
func (m *Map[P, K, V]) Priority(key K) (P, bool) {
	if i, ok := m.index[key]; ok {
		return m.heap[i].priority, true
	}
	var zero P
	return zero, false
}

// Set adds a new entry or updates an existing one. When key is already
// present its value is overwritten and its priority replaced, moving the
// entry to its new heap position; otherwise the entry is appended and
// swum up.
func (m *Map[P, K, V]) Set(key K, value V, priority P) {
	if i, ok := m.index[key]; ok {
		m.heap[i].value = value
		m.reprioritizeAt(i, priority)
		return
	}
	i := len(m.heap)
	m.heap = append(m.heap, entry[P, K, V]{priority: priority, key: key, value: value})
	m.index[key] = i
	m.swim(i)
}

// Peek returns the highest-priority entry without removing it.
func (m *Map[P, K, V]) Peek() (K, V, bool) {
	if len(m.heap) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := m.heap[0]
	return e.key, e.value, true
}

// Pop removes and returns the highest-priority entry.
func (m *Map[P, K, V]) Pop() (K, V, bool) {
	if len(m.heap) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := m.heap[0]
	m.removeAt(0)
	return e.key, e.value, true
}

// Remove removes the entry stored under key and returns its value.
func (m *Map[P, K, V]) Remove(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	v := m.heap[i].value
	m.removeAt(i)
	return v, true
}

// Reprioritize replaces the priority of key and returns the previous one.
// The entry's value is untouched.
func (m *Map[P, K, V]) Reprioritize(key K, priority P) (P, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	return m.reprioritizeAt(i, priority), true
}

// All returns an iterator over every key/value pair in no particular order.
// The map must not be mutated while iterating.
func (m *Map[P, K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.heap {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// removeAt deletes the entry at position i, relocating the last entry into
// its slot and re-sifting that occupant. The relocated entry's relation to
// its new parent is unknown, so both directions are tried; at most one of
// them moves anything.
func (m *Map[P, K, V]) removeAt(i int) {
	last := len(m.heap) - 1
	if i != last {
		m.swap(i, last)
	}
	delete(m.index, m.heap[last].key)
	m.heap[last] = entry[P, K, V]{} // release payload references
	m.heap = m.heap[:last]
	if i != last {
		m.sink(i)
		m.swim(i)
	}
}

// reprioritizeAt installs priority at position i and returns the previous
// priority. A single old-vs-new comparison picks the sift direction, which
// is sufficient because the heap was consistent before the change.
func (m *Map[P, K, V]) reprioritizeAt(i int, priority P) P {
	old := m.heap[i].priority
	m.heap[i].priority = priority
	if m.less(old, priority) {
		m.swim(i)
	} else {
		m.sink(i)
	}
	return old
}

// swim moves the entry at position i toward the root while its parent has
// strictly lower priority. Equal or incomparable priorities never move.
func (m *Map[P, K, V]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !m.less(m.heap[parent].priority, m.heap[i].priority) {
			return
		}
		m.swap(parent, i)
		i = parent
	}
}

// sink moves the entry at position i toward the leaves while one of its
// children has strictly higher priority. The right child is chosen only
// when strictly greater than the left, so equal children demote into the
// left subtree.
func (m *Map[P, K, V]) sink(i int) {
	for {
		child := 2*i + 1
		if child >= len(m.heap) {
			return
		}
		if right := child + 1; right < len(m.heap) && m.less(m.heap[child].priority, m.heap[right].priority) {
			child = right
		}
		if !m.less(m.heap[i].priority, m.heap[child].priority) {
			return
		}
		m.swap(i, child)
		i = child
	}
}

// swap exchanges the entries at positions i and j and repairs the index for
// both keys in the same step. All heap movement funnels through here;
// nothing else repositions a live entry.
func (m *Map[P, K, V]) swap(i, j int) {
	m.heap[i], m.heap[j] = m.heap[j], m.heap[i]
	m.index[m.heap[i].key] = i
	m.index[m.heap[j].key] = j
}
