// Package pebble implements a cache spill store backed by a Pebble database.
// Keys and values are gob-encoded; each record carries the entry's value and
// the priority it held when it was evicted, so re-admission restores its
// standing. Writes use NoSync because spilled cache entries are
// reconstructible by the caller.
package pebble

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// ErrInvalidPath is returned by NewStorage when no database path is given.
var ErrInvalidPath = errors.New("pebble: path must not be empty")

// Options configures the spill store.
type Options struct {
	Path         string // Database directory
	CacheSize    int64  // Pebble block cache size in bytes, 0 for the default
	MaxOpenFiles int    // 0 for the default
}

// record is the stored representation of one spilled cache entry.
type record[V any] struct {
	Value    V
	Priority float64
}

// Storage implements the cache spill store interface using Pebble.
type Storage[K comparable, V any] struct {
	db *pebble.DB
}

// NewStorage opens (or creates) the database at opts.Path.
func NewStorage[K comparable, V any](opts Options) (*Storage[K, V], error) {
	if opts.Path == "" {
		return nil, ErrInvalidPath
	}

	pebbleOpts := &pebble.Options{}
	if opts.CacheSize > 0 {
		pebbleOpts.Cache = pebble.NewCache(opts.CacheSize)
	}
	if opts.MaxOpenFiles > 0 {
		pebbleOpts.MaxOpenFiles = opts.MaxOpenFiles
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("pebble: open %s: %w", opts.Path, err)
	}

	return &Storage[K, V]{db: db}, nil
}

// Store writes an evicted entry together with its priority.
func (s *Storage[K, V]) Store(_ context.Context, key K, value V, priority float64) error {
	k, err := encode(key)
	if err != nil {
		return fmt.Errorf("pebble: encode key: %w", err)
	}
	v, err := encode(record[V]{Value: value, Priority: priority})
	if err != nil {
		return fmt.Errorf("pebble: encode value: %w", err)
	}
	if err := s.db.Set(k, v, pebble.NoSync); err != nil {
		return fmt.Errorf("pebble: set: %w", err)
	}
	return nil
}

// Load reads an entry back; found is false when the key is absent.
func (s *Storage[K, V]) Load(_ context.Context, key K) (V, float64, bool, error) {
	var zero V

	k, err := encode(key)
	if err != nil {
		return zero, 0, false, fmt.Errorf("pebble: encode key: %w", err)
	}

	data, closer, err := s.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return zero, 0, false, nil
	}
	if err != nil {
		return zero, 0, false, fmt.Errorf("pebble: get: %w", err)
	}
	defer closer.Close()

	var rec record[V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return zero, 0, false, fmt.Errorf("pebble: decode value: %w", err)
	}
	return rec.Value, rec.Priority, true, nil
}

// Delete removes an entry.
func (s *Storage[K, V]) Delete(_ context.Context, key K) error {
	k, err := encode(key)
	if err != nil {
		return fmt.Errorf("pebble: encode key: %w", err)
	}
	if err := s.db.Delete(k, pebble.NoSync); err != nil {
		return fmt.Errorf("pebble: delete: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Storage[K, V]) Close() error {
	return s.db.Close()
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
