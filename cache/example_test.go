package cache_test

import (
	"context"
	"fmt"

	"github.com/jjbayer/prioritymap/cache"
)

// ExampleCache demonstrates priority-based eviction.
func ExampleCache() {
	ctx := context.Background()

	c, err := cache.New[string, string](cache.WithCapacity[string, string](2))
	if err != nil {
		fmt.Printf("Failed to create cache: %v\n", err)
		return
	}

	_ = c.Put(ctx, "rarely-used", "v1", 1.0)
	_ = c.Put(ctx, "hot", "v2", 9.0)
	_ = c.Put(ctx, "warm", "v3", 5.0)

	for _, key := range []string{"rarely-used", "hot", "warm"} {
		_, ok, _ := c.Get(ctx, key)
		fmt.Printf("%s resident: %v\n", key, ok)
	}

	// Output:
	// rarely-used resident: false
	// hot resident: true
	// warm resident: true
}
