package prioritymap

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the twin invariant: the index mirrors every
// occupied position exactly, and no parent has strictly lower priority than
// a child.
func checkInvariants[P any, K comparable, V any](t *testing.T, m *Map[P, K, V]) {
	t.Helper()

	require.Equal(t, len(m.heap), len(m.index), "heap and index size diverged")
	for key, i := range m.index {
		require.Less(t, i, len(m.heap))
		require.Equal(t, key, m.heap[i].key, "index position holds a different key")
	}
	for i := 1; i < len(m.heap); i++ {
		parent := (i - 1) / 2
		require.False(t, m.less(m.heap[parent].priority, m.heap[i].priority),
			"parent at %d has lower priority than child at %d", parent, i)
	}
}

type modelEntry struct {
	priority int
	key      string
}

func modelLess(a, b modelEntry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.key < b.key
}

// TestRandomOperations drives the map through a random operation sequence,
// checking the twin invariant after every step and the final pop order
// against an ordered model.
func TestRandomOperations(t *testing.T) {
	const (
		steps    = 5000
		keySpace = 128
	)

	rng := rand.New(rand.NewSource(1))
	m := New[int, string, string]()
	model := btree.NewG[modelEntry](2, modelLess)
	priorities := make(map[string]int)

	for step := 0; step < steps; step++ {
		key := fmt.Sprintf("key-%d", rng.Intn(keySpace))

		switch rng.Intn(5) {
		case 0, 1:
			priority := rng.Intn(1000)
			if old, ok := priorities[key]; ok {
				model.Delete(modelEntry{priority: old, key: key})
			}
			m.Set(key, "v:"+key, priority)
			model.ReplaceOrInsert(modelEntry{priority: priority, key: key})
			priorities[key] = priority
		case 2:
			gotVal, gotOK := m.Remove(key)
			old, wantOK := priorities[key]
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, "v:"+key, gotVal)
				model.Delete(modelEntry{priority: old, key: key})
				delete(priorities, key)
			}
		case 3:
			priority := rng.Intn(1000)
			gotOld, gotOK := m.Reprioritize(key, priority)
			old, wantOK := priorities[key]
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, old, gotOld)
				model.Delete(modelEntry{priority: old, key: key})
				model.ReplaceOrInsert(modelEntry{priority: priority, key: key})
				priorities[key] = priority
			}
		case 4:
			popKey, popVal, gotOK := m.Pop()
			require.Equal(t, len(priorities) > 0, gotOK)
			if gotOK {
				require.Equal(t, "v:"+popKey, popVal)
				// Any entry sharing the maximum priority is a valid pop.
				max, _ := model.Max()
				require.Equal(t, max.priority, priorities[popKey])
				model.Delete(modelEntry{priority: priorities[popKey], key: popKey})
				delete(priorities, popKey)
			}
		}

		require.Equal(t, len(priorities), m.Len())
		checkInvariants(t, m)
	}

	// Drain: priorities must come out in the model's descending order.
	var want []int
	model.Descend(func(e modelEntry) bool {
		want = append(want, e.priority)
		return true
	})

	var got []int
	for m.Len() > 0 {
		key, _, ok := m.Pop()
		require.True(t, ok)
		got = append(got, priorities[key])
		checkInvariants(t, m)
	}
	require.Equal(t, want, got)
}

// TestIncomparablePriorities documents the behavior for priorities the order
// cannot compare: NaN compares false against everything, so NaN entries
// never displace others and their pop position is unspecified, but keyed
// access still works.
func TestIncomparablePriorities(t *testing.T) {
	m := New[float64, string, string]()

	m.Set("a", "va", 1)
	m.Set("n", "vn", math.NaN())
	m.Set("b", "vb", 2)

	require.Equal(t, 3, m.Len())

	val, ok := m.Get("n")
	require.True(t, ok)
	require.Equal(t, "vn", val)

	val, ok = m.Remove("n")
	require.True(t, ok)
	require.Equal(t, "vn", val)
	checkInvariants(t, m)

	_, val, ok = m.Pop()
	require.True(t, ok)
	require.Equal(t, "vb", val)
}
