package backend

import (
	"context"
	"fmt"
	"log/slog"

	"hesab/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite store", "db_path", config.SQLiteDBPath)
		store := storage.NewStore(kv)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case JSONFileBackend:
		kv, err := storage.NewJSONFileKV(config.DataFile)
		if err != nil {
			return nil, fmt.Errorf("initialize jsonfile store: %w", err)
		}
		f.logger.Info("Initialized JSON file store", "data_file", config.DataFile)
		return &Result{Store: storage.NewStore(kv), Cleanup: nil}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory store")
		return &Result{Store: storage.NewStore(storage.NewMemoryKV()), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case JSONFileBackend:
		if c.DataFile == "" {
			return fmt.Errorf("data file path is required for jsonfile backend")
		}
	case MemoryBackend:
		// Nothing to validate.
	}

	return nil
}
