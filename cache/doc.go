// Package cache provides a bounded cache that uses a priority map as its
// eviction index. Every entry carries a caller-assigned priority; when the
// cache grows past its capacity the lowest-priority entries are evicted
// first. Because the index supports keyed reprioritization, an entry's
// standing can be adjusted in O(log n) without reinserting it.
//
// An optional spill store receives evicted entries instead of discarding
// them, and Get falls through to it on a miss, re-admitting whatever it
// finds. The pebble subpackage provides a disk-backed spill store.
//
// Basic usage:
//
//	c, err := cache.New[string, string](cache.WithCapacity(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	_ = c.Put(ctx, "k1", "v1", 3.5)
//	_ = c.Put(ctx, "k2", "v2", 1.0)
//
//	// Bump k2 so it outlives k1
//	c.Touch("k2", 9.0)
//
//	v, ok, err := c.Get(ctx, "k1")
//
// With a spill store:
//
//	store, err := pebble.NewStorage[string, string](pebble.Options{
//	    Path: filepath.Join(dir, "spill"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	c, err := cache.New[string, string](
//	    cache.WithCapacity(1000),
//	    cache.WithStorage(store),
//	)
//
// The cache is not safe for concurrent use; like the priority map underneath
// it, it assumes a single writer.
package cache
