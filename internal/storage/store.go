package storage

import (
	"context"
	"fmt"
	"log/slog"

	"hesab/internal/core"
	applog "hesab/internal/log"
)

// Store persists the entry and goal lists as two blobs in a KV store.
// The whole list is rewritten on every save; the stored blob is the
// sole source of truth.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// LoadEntries reads the persisted entry list. "No data yet" and
// unreadable blobs both come back as an empty list: availability wins
// over alerting on corruption, so a broken blob is logged and treated
// as empty rather than propagated.
func (s *Store) LoadEntries(ctx context.Context) ([]core.Entry, error) {
	blob, ok, err := s.kv.Get(ctx, KeyEntries)
	if err != nil {
		slog.WarnContext(ctx, "Entry blob unreadable, starting empty", applog.FieldKey, KeyEntries, applog.FieldError, err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	entries, err := DecodeEntries(blob)
	if err != nil {
		slog.WarnContext(ctx, "Entry blob corrupt, starting empty", applog.FieldKey, KeyEntries, applog.FieldError, err)
		return nil, nil
	}
	return entries, nil
}

// SaveEntries rewrites the full entry list. The caller's in-memory
// list is not considered updated until this returns nil.
func (s *Store) SaveEntries(ctx context.Context, entries []core.Entry) error {
	blob, err := EncodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := s.kv.Set(ctx, KeyEntries, blob); err != nil {
		return fmt.Errorf("write %s: %w", KeyEntries, err)
	}
	slog.DebugContext(ctx, "Entries saved", applog.FieldKey, KeyEntries, applog.FieldCount, len(entries))
	return nil
}

// LoadGoals reads the persisted goal list, with the same empty-on-
// failure recovery as LoadEntries.
func (s *Store) LoadGoals(ctx context.Context) ([]core.Goal, error) {
	blob, ok, err := s.kv.Get(ctx, KeyGoals)
	if err != nil {
		slog.WarnContext(ctx, "Goal blob unreadable, starting empty", applog.FieldKey, KeyGoals, applog.FieldError, err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	goals, err := DecodeGoals(blob)
	if err != nil {
		slog.WarnContext(ctx, "Goal blob corrupt, starting empty", applog.FieldKey, KeyGoals, applog.FieldError, err)
		return nil, nil
	}
	return goals, nil
}

// SaveGoals rewrites the full goal list.
func (s *Store) SaveGoals(ctx context.Context, goals []core.Goal) error {
	blob, err := EncodeGoals(goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	if err := s.kv.Set(ctx, KeyGoals, blob); err != nil {
		return fmt.Errorf("write %s: %w", KeyGoals, err)
	}
	slog.DebugContext(ctx, "Goals saved", applog.FieldKey, KeyGoals, applog.FieldCount, len(goals))
	return nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.kv.Close()
}
