package backend

import (
	"context"

	"hesab/internal/storage"
)

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result contains the opened store and an optional cleanup function.
type Result struct {
	Store   *storage.Store
	Cleanup CleanupFunc
}

// Factory opens stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// JSON file specific
	DataFile string
}

// Type selects the persistence backend.
type Type string

const (
	SQLiteBackend   Type = "sqlite"
	JSONFileBackend Type = "jsonfile"
	MemoryBackend   Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, JSONFileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{SQLiteBackend, JSONFileBackend, MemoryBackend}
}
