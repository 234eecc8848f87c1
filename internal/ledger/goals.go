package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"hesab/internal/core"
	applog "hesab/internal/log"
)

// AddGoal appends a new checklist item and rewrites the goal list.
func (l *Ledger) AddGoal(ctx context.Context, title, note string) (core.Goal, error) {
	g := core.NewGoal(title, note)
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := append(copyGoals(l.goals), g)
	if err := l.saveGoalsLocked(ctx, next); err != nil {
		return core.Goal{}, err
	}

	slog.InfoContext(ctx, "Goal added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldGoalID, g.ID,
		"title", g.Title)
	l.publish(ctx, "created", "goals", g.ID)
	return g, nil
}

// SetGoalDone replaces the goal with a copy carrying the given done
// flag. Setting the same value twice is a no-op for the stored list.
func (l *Ledger) SetGoalDone(ctx context.Context, id string, done bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := copyGoals(l.goals)
	pos := -1
	for i := range next {
		if next[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrNotFound
	}
	if next[pos].Done == done {
		return nil
	}
	next[pos].Done = done
	if err := l.saveGoalsLocked(ctx, next); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Goal toggled",
		applog.FieldOperation, applog.OpToggle,
		applog.FieldGoalID, id,
		"done", done)
	l.publish(ctx, "toggled", "goals", id)
	return nil
}

// DeleteGoal filters the goal out of the list and rewrites it.
func (l *Ledger) DeleteGoal(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]core.Goal, 0, len(l.goals))
	found := false
	for _, g := range l.goals {
		if g.ID == id {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return ErrNotFound
	}
	if err := l.saveGoalsLocked(ctx, next); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Goal deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldGoalID, id)
	l.publish(ctx, "deleted", "goals", id)
	return nil
}

func (l *Ledger) saveGoalsLocked(ctx context.Context, next []core.Goal) error {
	if err := l.store.SaveGoals(ctx, next); err != nil {
		slog.ErrorContext(ctx, "Goal save failed, keeping previous snapshot", applog.FieldError, err)
		return fmt.Errorf("save goals: %w", err)
	}
	l.goals = next
	return nil
}

func copyGoals(goals []core.Goal) []core.Goal {
	out := make([]core.Goal, len(goals))
	copy(out, goals)
	return out
}
