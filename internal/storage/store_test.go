package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hesab/internal/core"
)

func TestStoreSaveLoadEntries(t *testing.T) {
	store := NewStore(NewMemoryKV())
	ctx := context.Background()

	entries, err := store.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "no data yet reads as empty list")

	saved := []core.Entry{
		core.NewSaving(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), core.IRR, core.Money{Cents: -100}, ""),
		core.NewIncome(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), core.Money{Cents: 5000}, "x"),
	}
	require.NoError(t, store.SaveEntries(ctx, saved))

	loaded, err := store.LoadEntries(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, int64(-100), loaded[0].Saving.Delta.Cents)
}

func TestStoreCorruptBlobReadsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyEntries, "{{{corrupt"))
	require.NoError(t, kv.Set(ctx, KeyGoals, "{{{corrupt"))

	store := NewStore(kv)

	entries, err := store.LoadEntries(ctx)
	require.NoError(t, err, "corruption recovers as empty, never fails")
	assert.Empty(t, entries)

	goals, err := store.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestStoreSaveLoadGoals(t *testing.T) {
	store := NewStore(NewMemoryKV())
	ctx := context.Background()

	g := core.NewGoal("bicycle", "")
	require.NoError(t, store.SaveGoals(ctx, []core.Goal{g}))

	goals, err := store.LoadGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, g, goals[0])
}
