// Package prioritymap implements a priority map: a collection that associates
// a unique key with a value and a mutable priority, combining a map's keyed
// access with a heap's ordered retrieval. Unlike a plain binary heap, any
// entry can be looked up, removed, or reprioritized by its key in O(log n)
// time.
//
// The map is implemented as an array-backed max-heap of (priority, key, value)
// entries coupled with a key-to-position index. Every heap movement updates the
// index in the same step, which is what keeps keyed operations logarithmic.
//
// Key features:
//   - Generic implementation: any ordered priority type, any comparable key
//     type, any value type
//   - O(log n) insertion, deletion and reprioritization
//   - O(1) peek and key-based lookups
//   - Upsert semantics: setting an existing key updates its value and
//     priority in place
//
// Basic usage:
//
//	// Create a map with int priorities, highest priority first
//	m := prioritymap.New[int, string, string]()
//
//	// Add entries
//	m.Set("job1", "payload-1", 5)
//	m.Set("job2", "payload-2", 3)
//	m.Set("job3", "payload-3", 7)
//
//	// Inspect the highest-priority entry
//	key, value, ok := m.Peek()
//	if ok {
//	    fmt.Printf("next: %s = %s\n", key, value)
//	}
//
//	// Remove and return the highest-priority entry
//	key, value, ok = m.Pop()
//
//	// Change an entry's priority, keeping its value
//	old, ok := m.Reprioritize("job1", 10)
//
//	// Remove an arbitrary entry by key
//	value, ok = m.Remove("job2")
//
// NewFunc accepts a comparison function instead of relying on the priority
// type's natural order, which allows min-ordered maps and custom priority
// types:
//
//	// Smallest priority first
//	m := prioritymap.NewFunc[int, string, string](func(a, b int) bool {
//	    return a > b
//	})
//
// Ordering is whatever the comparison reports. If two priorities are
// incomparable under it (for example float64 NaN, which compares false in
// both directions), neither entry ever displaces the other and their relative
// pop order is unspecified. Callers who need totality should supply a total
// comparison, such as one built on cmp.Compare.
//
// The map is not safe for concurrent use. It assumes a single writer and
// performs no locking or I/O of its own.
package prioritymap
