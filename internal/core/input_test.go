package core

import (
	"errors"
	"testing"
	"time"
)

func TestBuildEntry(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("income", func(t *testing.T) {
		e, err := BuildEntry(EntryInput{Kind: KindIncome, Amount: "1000", Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Kind != KindIncome || e.Amount.Cents != 100000 {
			t.Fatalf("unexpected entry: %+v", e)
		}
		if e.ID == "" {
			t.Fatal("expected fresh id")
		}
	})

	t.Run("expense without category falls back", func(t *testing.T) {
		e, err := BuildEntry(EntryInput{Kind: KindExpense, Amount: "200", Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Expense == nil || e.Expense.Category != FallbackCategory {
			t.Fatalf("expected fallback category, got %+v", e.Expense)
		}
	})

	t.Run("saving keeps sign in delta", func(t *testing.T) {
		e, err := BuildEntry(EntryInput{Kind: KindSaving, Amount: "-150", Currency: IRR, Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Saving.Delta.Cents != -15000 || e.Amount.Cents != 15000 {
			t.Fatalf("unexpected saving: delta=%d amount=%d", e.Saving.Delta.Cents, e.Amount.Cents)
		}
	})

	t.Run("zero date defaults to now", func(t *testing.T) {
		before := time.Now()
		e, err := BuildEntry(EntryInput{Kind: KindIncome, Amount: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Date.Before(before) || e.Date.After(time.Now()) {
			t.Fatalf("expected date near now, got %v", e.Date)
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		cases := []EntryInput{
			{Kind: KindIncome, Amount: "0"},
			{Kind: KindIncome, Amount: "nope"},
			{Kind: KindExpense, Amount: "-5", Category: "Food"},
			{Kind: KindSaving, Amount: "0", Currency: USD},
			{Kind: KindSaving, Amount: "92233720368547758.99", Currency: IRR},
		}
		for i, in := range cases {
			if _, err := BuildEntry(in); err == nil {
				t.Fatalf("case %d expected error", i)
			}
		}
	})

	t.Run("saving requires valid currency", func(t *testing.T) {
		_, err := BuildEntry(EntryInput{Kind: KindSaving, Amount: "10", Currency: "EUR"})
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildEntry(EntryInput{Kind: "transfer", Amount: "10"})
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})
}
