package report

import (
	"testing"
	"time"

	"hesab/internal/core"
)

func day(n int) time.Time {
	return time.Date(2025, 3, n, 0, 0, 0, 0, time.UTC)
}

// sampleEntries is the dashboard's reference scenario: mixed kinds,
// one uncategorized expense, one IRR deposit and one withdrawal.
func sampleEntries() []core.Entry {
	return []core.Entry{
		core.NewIncome(day(1), core.Money{Cents: 100000}, "salary"),
		core.NewExpense(day(2), core.Money{Cents: 30000}, "Food", "", ""),
		core.NewExpense(day(3), core.Money{Cents: 20000}, "", "", "uncategorized"),
		core.NewSaving(day(4), core.IRR, core.Money{Cents: 50000}, ""),
		core.NewSaving(day(5), core.IRR, core.Money{Cents: -15000}, ""),
	}
}

func TestTotals(t *testing.T) {
	entries := sampleEntries()

	if got := TotalIncome(entries).Cents; got != 100000 {
		t.Fatalf("TotalIncome expected 100000, got %d", got)
	}
	if got := TotalExpense(entries).Cents; got != 50000 {
		t.Fatalf("TotalExpense expected 50000, got %d", got)
	}
	if got := NetBalance(entries).Cents; got != 50000 {
		t.Fatalf("NetBalance expected 50000, got %d", got)
	}
	if got := SavingBalance(entries, core.IRR).Cents; got != 35000 {
		t.Fatalf("SavingBalance(IRR) expected 35000, got %d", got)
	}
	if got := SavingBalance(entries, core.USD).Cents; got != 0 {
		t.Fatalf("SavingBalance(USD) expected 0, got %d", got)
	}
	if got := TotalInvested(entries).Cents; got != 0 {
		t.Fatalf("TotalInvested expected 0, got %d", got)
	}
}

func TestEmptyList(t *testing.T) {
	var entries []core.Entry

	if NetBalance(entries).Cents != 0 || TotalInvested(entries).Cents != 0 {
		t.Fatal("expected zero totals for empty list")
	}
	if got := RecentEntries(entries, 10); len(got) != 0 {
		t.Fatalf("expected empty recent list, got %d", len(got))
	}
	if got := ExpenseByCategory(entries); len(got) != 0 {
		t.Fatalf("expected empty group map, got %d", len(got))
	}
}

func TestGroupSumOrderAndFallback(t *testing.T) {
	entries := sampleEntries()
	groups := ExpenseByCategory(entries)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// First-occurrence order, not alphabetical.
	if groups[0].Name != "Food" || groups[0].Amount.Cents != 30000 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Name != core.FallbackCategory || groups[1].Amount.Cents != 20000 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestGroupSumMatchesDirectTotal(t *testing.T) {
	entries := sampleEntries()
	entries = append(entries,
		core.NewExpense(day(6), core.Money{Cents: 7700}, "Food", "", ""),
		core.NewInvestment(day(7), core.Money{Cents: 12345}, core.Gold, ""),
		core.NewInvestment(day(8), core.Money{Cents: 55}, core.Crypto, ""),
	)

	var grouped int64
	for _, g := range ExpenseByCategory(entries) {
		grouped += g.Amount.Cents
	}
	if grouped != TotalExpense(entries).Cents {
		t.Fatalf("expense groups sum to %d, total is %d", grouped, TotalExpense(entries).Cents)
	}

	grouped = 0
	for _, g := range InvestmentByType(entries) {
		grouped += g.Amount.Cents
	}
	if grouped != TotalInvested(entries).Cents {
		t.Fatalf("investment groups sum to %d, total is %d", grouped, TotalInvested(entries).Cents)
	}
}

func TestPercentageShares(t *testing.T) {
	shares := PercentageShares(ExpenseByCategory(sampleEntries()))

	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0].Name != "Food" || shares[0].Percent != 60 {
		t.Fatalf("unexpected first share: %+v", shares[0])
	}
	if shares[1].Name != core.FallbackCategory || shares[1].Percent != 40 {
		t.Fatalf("unexpected second share: %+v", shares[1])
	}
}

func TestPercentageSharesZeroTotal(t *testing.T) {
	if got := PercentageShares(nil); len(got) != 0 {
		t.Fatalf("expected empty shares, got %d", len(got))
	}

	groups := []CategoryAmount{{Name: "A"}, {Name: "B"}}
	for _, sh := range PercentageShares(groups) {
		if sh.Percent != 0 {
			t.Fatalf("expected zero percent for %s, got %d", sh.Name, sh.Percent)
		}
	}
}

func TestRecentEntries(t *testing.T) {
	entries := sampleEntries()
	core.SortEntriesDesc(entries)

	recent := RecentEntries(entries, 3)
	if len(recent) != 3 {
		t.Fatalf("expected 3, got %d", len(recent))
	}
	if !recent[0].Date.Equal(day(5)) {
		t.Fatalf("expected newest first, got %v", recent[0].Date)
	}

	if got := RecentEntries(entries, 100); len(got) != len(entries) {
		t.Fatalf("expected whole list, got %d", len(got))
	}
	if got := RecentEntries(entries, 0); len(got) != 0 {
		t.Fatalf("expected empty, got %d", len(got))
	}

	// No mutation of the input slice.
	recent[0].Note = "changed"
	if entries[0].Note == "changed" {
		t.Fatal("RecentEntries must copy, not alias")
	}
}

func TestBuildOverview(t *testing.T) {
	entries := sampleEntries()
	entries = append(entries, core.NewSaving(day(6), core.USD, core.Money{Cents: -1000}, ""))
	core.SortEntriesDesc(entries)

	ov := BuildOverview(entries)

	if ov.NetBalance.Cents != 50000 {
		t.Fatalf("net expected 50000, got %d", ov.NetBalance.Cents)
	}
	if len(ov.Savings) != 2 {
		t.Fatalf("expected 2 saving currencies, got %d", len(ov.Savings))
	}
	if len(ov.OverdrawnCurrencies) != 1 || ov.OverdrawnCurrencies[0] != core.USD {
		t.Fatalf("expected USD flagged overdrawn, got %v", ov.OverdrawnCurrencies)
	}
	if len(ov.Recent) != len(entries) {
		t.Fatalf("expected all %d entries recent, got %d", len(entries), len(ov.Recent))
	}
}

func TestSearchNotes(t *testing.T) {
	entries := sampleEntries()

	got := SearchNotes(entries, "salary")
	if len(got) != 1 || got[0].Kind != core.KindIncome {
		t.Fatalf("expected the income entry, got %d results", len(got))
	}

	// Case-insensitive fuzzy match.
	got = SearchNotes(entries, "SALARY")
	if len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %d results", len(got))
	}

	if got := SearchNotes(entries, ""); len(got) != len(entries) {
		t.Fatalf("empty query should match all, got %d", len(got))
	}
}
