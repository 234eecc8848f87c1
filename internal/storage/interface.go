package storage

import "context"

// Keys under which the two persisted lists live in the key-value store.
const (
	KeyEntries = "finance_entries"
	KeyGoals   = "finance_goals"
)

// KV is a minimal key-value store holding opaque text blobs.
type KV interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set durably replaces the value for key.
	Set(ctx context.Context, key, value string) error
	Close() error
}
