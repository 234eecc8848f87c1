// Package ledger owns the in-memory lists and every mutation of them.
// All mutations run to completion, including the persistence write,
// before the lists are considered updated: on a failed save the
// previous snapshot is restored, so memory and storage never diverge
// past one operation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"hesab/internal/core"
	applog "hesab/internal/log"
	"hesab/internal/storage"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Events receives change notifications after successful saves. A nil
// Events is fine; publish failures never fail the user's operation.
type Events interface {
	PublishChange(ctx context.Context, op, collection, id string) error
}

// Ledger orchestrates entry and goal mutations against a store.
type Ledger struct {
	mu      sync.Mutex
	store   *storage.Store
	events  Events
	entries []core.Entry
	goals   []core.Goal

	// single-level undo for the last deleted entry
	lastDeleted    *core.Entry
	lastDeletedPos int
}

func New(store *storage.Store, events Events) *Ledger {
	return &Ledger{store: store, events: events}
}

// Load pulls both lists from the store. Read failures surface as empty
// lists inside the store layer, so Load itself only fails on context
// errors.
func (l *Ledger) Load(ctx context.Context) error {
	entries, err := l.store.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	goals, err := l.store.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	core.SortEntriesDesc(entries)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = entries
	l.goals = goals
	return nil
}

// Entries returns a copy of the current snapshot, newest first.
func (l *Ledger) Entries() []core.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Goals returns a copy of the current goal list.
func (l *Ledger) Goals() []core.Goal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Goal, len(l.goals))
	copy(out, l.goals)
	return out
}

// AddEntry builds an entry from raw input, appends it, re-sorts and
// rewrites the full list. The new entry is returned on success.
func (l *Ledger) AddEntry(ctx context.Context, in core.EntryInput) (core.Entry, error) {
	e, err := core.BuildEntry(in)
	if err != nil {
		return core.Entry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := append(copyEntries(l.entries), e)
	core.SortEntriesDesc(next)
	if err := l.saveEntriesLocked(ctx, next); err != nil {
		return core.Entry{}, err
	}

	slog.InfoContext(ctx, "Entry added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldEntryID, e.ID,
		applog.FieldKind, e.Kind,
		applog.FieldAmountCents, e.Amount.Cents)
	l.publish(ctx, "created", "entries", e.ID)
	return e, nil
}

// UpdateEntry replaces the entry with the same id by the given value.
// Edits are whole-value: the caller constructs a complete new entry.
func (l *Ledger) UpdateEntry(ctx context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := copyEntries(l.entries)
	pos := -1
	for i := range next {
		if next[i].ID == e.ID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrNotFound
	}
	next[pos] = e
	core.SortEntriesDesc(next)
	if err := l.saveEntriesLocked(ctx, next); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Entry updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldEntryID, e.ID,
		applog.FieldKind, e.Kind)
	l.publish(ctx, "updated", "entries", e.ID)
	return nil
}

// DeleteEntry removes the entry and rewrites the list. The removed
// entry is retained for a single UndoDelete.
func (l *Ledger) DeleteEntry(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos := -1
	for i := range l.entries {
		if l.entries[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrNotFound
	}
	deleted := l.entries[pos]

	next := make([]core.Entry, 0, len(l.entries)-1)
	next = append(next, l.entries[:pos]...)
	next = append(next, l.entries[pos+1:]...)
	if err := l.saveEntriesLocked(ctx, next); err != nil {
		return err
	}

	l.lastDeleted = &deleted
	l.lastDeletedPos = pos
	slog.InfoContext(ctx, "Entry deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldEntryID, id,
		applog.FieldKind, deleted.Kind)
	l.publish(ctx, "deleted", "entries", id)
	return nil
}

// UndoDelete restores the most recently deleted entry at its previous
// position. Only one level of undo is kept.
func (l *Ledger) UndoDelete(ctx context.Context) (core.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastDeleted == nil {
		return core.Entry{}, ErrNothingToUndo
	}
	restored := *l.lastDeleted
	pos := l.lastDeletedPos
	if pos > len(l.entries) {
		pos = len(l.entries)
	}

	next := make([]core.Entry, 0, len(l.entries)+1)
	next = append(next, l.entries[:pos]...)
	next = append(next, restored)
	next = append(next, l.entries[pos:]...)
	if err := l.saveEntriesLocked(ctx, next); err != nil {
		return core.Entry{}, err
	}

	l.lastDeleted = nil
	slog.InfoContext(ctx, "Entry delete undone",
		applog.FieldOperation, applog.OpUndo,
		applog.FieldEntryID, restored.ID)
	l.publish(ctx, "created", "entries", restored.ID)
	return restored, nil
}

// saveEntriesLocked persists next and swaps it in on success. On
// failure the previous snapshot stays current.
func (l *Ledger) saveEntriesLocked(ctx context.Context, next []core.Entry) error {
	if err := l.store.SaveEntries(ctx, next); err != nil {
		slog.ErrorContext(ctx, "Entry save failed, keeping previous snapshot", applog.FieldError, err)
		return fmt.Errorf("save entries: %w", err)
	}
	l.entries = next
	return nil
}

func (l *Ledger) publish(ctx context.Context, op, collection, id string) {
	if l.events == nil {
		return
	}
	if err := l.events.PublishChange(ctx, op, collection, id); err != nil {
		// Change events feed the mirror worker only; never fail the
		// user's operation over them.
		slog.WarnContext(ctx, "Failed to publish change event",
			applog.FieldOperation, op, "collection", collection, "id", id, applog.FieldError, err)
	}
}

func copyEntries(entries []core.Entry) []core.Entry {
	out := make([]core.Entry, len(entries))
	copy(out, entries)
	return out
}
