package cache

// options defines all configuration options for the cache.
type options[K comparable, V any] struct {
	capacity int           // Maximum number of resident entries
	spill    Storage[K, V] // Destination for evicted entries, may be nil
}

// Option is a function that configures the cache options.
type Option[K comparable, V any] func(*options[K, V])

// WithCapacity sets the maximum number of resident entries.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.capacity = n
	}
}

// WithStorage sets the spill store evicted entries are written to.
func WithStorage[K comparable, V any](s Storage[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.spill = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{
		capacity: 1024,
		spill:    nil,
	}
}
