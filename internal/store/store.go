// internal/store/store.go
//
// Persistence contract for serialized game state.
// The engine only needs a string key-value collaborator; implementations
// may be backed by memory (dev/tests) or Redis (production).

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("store: key not found")

// KV defines the key-value persistence interface for game state.
type KV interface {
	// Get retrieves the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set persists value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
