// internal/store/memory.go
//
// In-memory implementation of the KV interface.
// Lightweight persistence used in development and tests, or when
// durability is not required. State is lost on process restart.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based KV implementation.
type memory struct {
	mu     sync.RWMutex      // guards values map
	values map[string]string // keyed by instance key
}

// NewMemory constructs a new in-memory KV.
func NewMemory() KV {
	return &memory{values: make(map[string]string)}
}

// Set adds or updates the value in the map.
func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Get looks up a value by key. Returns ErrNotFound if missing.
func (m *memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", ErrNotFound
}
