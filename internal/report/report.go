// Package report computes the dashboard's derived figures from a
// snapshot of entries. Every function is pure: no I/O, no mutation of
// the input, deterministic for the same list.
package report

import (
	"math"

	"hesab/internal/core"
)

// CategoryAmount is an amount aggregated under one group key.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// CategoryShare is a group's rounded percentage of its map's total.
type CategoryShare struct {
	Name    string
	Percent int
}

// KeyFunc extracts the grouping key from an entry. Returning "" buckets
// the entry under core.FallbackCategory.
type KeyFunc func(core.Entry) string

// TotalIncome sums the amounts of all income entries.
func TotalIncome(entries []core.Entry) core.Money {
	return sumAmounts(entries, core.KindIncome)
}

// TotalExpense sums the amounts of all expense entries.
func TotalExpense(entries []core.Entry) core.Money {
	return sumAmounts(entries, core.KindExpense)
}

// TotalInvested sums the amounts paid into investments. This is a
// cumulative amount-in figure, not a present value.
func TotalInvested(entries []core.Entry) core.Money {
	return sumAmounts(entries, core.KindInvestment)
}

// NetBalance is total income minus total expense, in the single
// implicit reporting currency. It can be negative.
func NetBalance(entries []core.Entry) core.Money {
	return core.Money{Cents: TotalIncome(entries).Cents - TotalExpense(entries).Cents}
}

// SavingBalance sums the signed deltas of saving entries in the given
// currency. A negative result (over-withdrawn) is permitted; callers
// decide whether to surface it as a warning.
func SavingBalance(entries []core.Entry, currency core.Currency) core.Money {
	var cents int64
	for _, e := range entries {
		if e.Kind == core.KindSaving && e.Saving != nil && e.Saving.Currency == currency {
			cents += e.Saving.Delta.Cents
		}
	}
	return core.Money{Cents: cents}
}

// SavingCurrencies returns the currencies that appear in saving
// entries, in first-occurrence order.
func SavingCurrencies(entries []core.Entry) []core.Currency {
	var out []core.Currency
	seen := map[core.Currency]bool{}
	for _, e := range entries {
		if e.Kind != core.KindSaving || e.Saving == nil {
			continue
		}
		if !seen[e.Saving.Currency] {
			seen[e.Saving.Currency] = true
			out = append(out, e.Saving.Currency)
		}
	}
	return out
}

// GroupSum aggregates amounts of entries of one kind per group key.
// Keys appear in first-occurrence order of the input list; chart
// legends depend on that ordering staying stable within a render.
func GroupSum(entries []core.Entry, kind core.Kind, key KeyFunc) []CategoryAmount {
	var out []CategoryAmount
	index := map[string]int{}
	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		name := key(e)
		if name == "" {
			name = core.FallbackCategory
		}
		if i, ok := index[name]; ok {
			out[i].Amount.Cents += e.Amount.Cents
			continue
		}
		index[name] = len(out)
		out = append(out, CategoryAmount{Name: name, Amount: e.Amount})
	}
	return out
}

// ExpenseByCategory groups expense amounts per top-level category.
func ExpenseByCategory(entries []core.Entry) []CategoryAmount {
	return GroupSum(entries, core.KindExpense, func(e core.Entry) string {
		if e.Expense == nil {
			return ""
		}
		return e.Expense.Category
	})
}

// ExpenseBySubcategory groups expense amounts per second-level label.
func ExpenseBySubcategory(entries []core.Entry) []CategoryAmount {
	return GroupSum(entries, core.KindExpense, func(e core.Entry) string {
		if e.Expense == nil {
			return ""
		}
		return e.Expense.Subcategory
	})
}

// InvestmentByType groups investment amounts per investment type.
func InvestmentByType(entries []core.Entry) []CategoryAmount {
	return GroupSum(entries, core.KindInvestment, func(e core.Entry) string {
		if e.Investment == nil {
			return ""
		}
		return string(e.Investment.Type)
	})
}

// PercentageShares converts group sums into whole-percent shares of the
// map's total, preserving order. A zero or negative total yields zero
// for every key; the result never contains NaN or infinities.
func PercentageShares(groups []CategoryAmount) []CategoryShare {
	shares := make([]CategoryShare, len(groups))
	var total int64
	for _, g := range groups {
		total += g.Amount.Cents
	}
	for i, g := range groups {
		shares[i].Name = g.Name
		if total > 0 {
			shares[i].Percent = int(math.Round(float64(g.Amount.Cents) / float64(total) * 100))
		}
	}
	return shares
}

// RecentEntries returns the first n entries of the list, which the
// ledger keeps sorted newest first. Shorter lists are returned whole.
func RecentEntries(entries []core.Entry, n int) []core.Entry {
	if n <= 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]core.Entry, n)
	copy(out, entries[:n])
	return out
}

func sumAmounts(entries []core.Entry, kind core.Kind) core.Money {
	var cents int64
	for _, e := range entries {
		if e.Kind == kind {
			cents += e.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}
