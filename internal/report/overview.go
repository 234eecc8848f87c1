package report

import "hesab/internal/core"

// SavingTotal is the running balance of one saving currency.
type SavingTotal struct {
	Currency core.Currency
	Balance  core.Money
}

// Overview bundles every dashboard figure computed from one snapshot.
type Overview struct {
	TotalIncome   core.Money
	TotalExpense  core.Money
	NetBalance    core.Money
	TotalInvested core.Money

	Savings []SavingTotal
	// OverdrawnCurrencies lists currencies whose balance is negative.
	// Withdrawing past zero is allowed; this only flags it.
	OverdrawnCurrencies []core.Currency

	ExpenseCategories []CategoryAmount
	ExpenseShares     []CategoryShare
	InvestmentTypes   []CategoryAmount
	InvestmentShares  []CategoryShare

	Recent []core.Entry
}

// RecentCount is how many entries the dashboard's recent list shows.
const RecentCount = 10

// BuildOverview computes all dashboard figures in one pass over the
// snapshot. The snapshot is expected to be sorted newest first.
func BuildOverview(entries []core.Entry) Overview {
	ov := Overview{
		TotalIncome:       TotalIncome(entries),
		TotalExpense:      TotalExpense(entries),
		NetBalance:        NetBalance(entries),
		TotalInvested:     TotalInvested(entries),
		ExpenseCategories: ExpenseByCategory(entries),
		InvestmentTypes:   InvestmentByType(entries),
		Recent:            RecentEntries(entries, RecentCount),
	}
	ov.ExpenseShares = PercentageShares(ov.ExpenseCategories)
	ov.InvestmentShares = PercentageShares(ov.InvestmentTypes)

	for _, c := range SavingCurrencies(entries) {
		bal := SavingBalance(entries, c)
		ov.Savings = append(ov.Savings, SavingTotal{Currency: c, Balance: bal})
		if bal.Cents < 0 {
			ov.OverdrawnCurrencies = append(ov.OverdrawnCurrencies, c)
		}
	}
	return ov
}
