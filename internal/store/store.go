// internal/store/store.go
//
// Key-value persistence used for category progress, first-time hint flags
// and player settings. Values are strings; typed access lives in the
// progress package.
//
// Implementations:
//   - memory.go: map-backed, process lifetime (tests, DB_PATH unset).
//   - sqlite.go: SQLite-backed, durable.

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a key that was never set.
var ErrNotFound = errors.New("store: key not found")

// KV is a persistent string map.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
