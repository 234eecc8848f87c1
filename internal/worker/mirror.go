// Package worker keeps a plain JSON mirror of the current snapshot on
// disk, driven by change events. The mirror is a local convenience
// copy for other tools; the key-value store stays the source of truth.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"hesab/internal/amqp"
	applog "hesab/internal/log"
	"hesab/internal/storage"
)

// MirrorWorker rewrites the mirror file whenever a change event
// arrives. It reloads the full snapshot from the store instead of
// trusting message payloads, so a lost message at worst delays the
// mirror until the next change.
type MirrorWorker struct {
	store  *storage.Store
	mirror *storage.Store
}

// NewMirrorWorker mirrors snapshots from store into the JSON file at
// mirrorPath.
func NewMirrorWorker(store *storage.Store, mirrorPath string) (*MirrorWorker, error) {
	kv, err := storage.NewJSONFileKV(mirrorPath)
	if err != nil {
		return nil, fmt.Errorf("open mirror file: %w", err)
	}
	return &MirrorWorker{store: store, mirror: storage.NewStore(kv)}, nil
}

// HandleChange processes one change event by re-mirroring the changed
// collection.
func (w *MirrorWorker) HandleChange(ctx context.Context, msg *amqp.ChangeMessage) error {
	slog.InfoContext(ctx, "Processing change event",
		applog.FieldOperation, msg.Op, "collection", msg.Collection, "id", msg.ID)

	switch msg.Collection {
	case "entries":
		return w.mirrorEntries(ctx)
	case "goals":
		return w.mirrorGoals(ctx)
	default:
		slog.WarnContext(ctx, "Unknown collection in change event", "collection", msg.Collection)
		return nil
	}
}

// MirrorAll rewrites both collections, used once at startup so the
// mirror catches up on changes made while the worker was down.
func (w *MirrorWorker) MirrorAll(ctx context.Context) error {
	if err := w.mirrorEntries(ctx); err != nil {
		return err
	}
	return w.mirrorGoals(ctx)
}

func (w *MirrorWorker) mirrorEntries(ctx context.Context) error {
	entries, err := w.store.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	if err := w.mirror.SaveEntries(ctx, entries); err != nil {
		return fmt.Errorf("mirror entries: %w", err)
	}
	slog.InfoContext(ctx, "Entries mirrored",
		applog.FieldOperation, applog.OpMirror, applog.FieldCount, len(entries))
	return nil
}

func (w *MirrorWorker) mirrorGoals(ctx context.Context) error {
	goals, err := w.store.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	if err := w.mirror.SaveGoals(ctx, goals); err != nil {
		return fmt.Errorf("mirror goals: %w", err)
	}
	slog.InfoContext(ctx, "Goals mirrored",
		applog.FieldOperation, applog.OpMirror, applog.FieldCount, len(goals))
	return nil
}
