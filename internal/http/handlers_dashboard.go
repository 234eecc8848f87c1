package http

import (
	"net/http"

	"hesab/internal/report"
)

type savingTotalJSON struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

type categoryAmountJSON struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type categoryShareJSON struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type dashboardJSON struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpense  string `json:"totalExpense"`
	NetBalance    string `json:"netBalance"`
	TotalInvested string `json:"totalInvested"`

	Savings []savingTotalJSON `json:"savings"`

	ExpenseCategories []categoryAmountJSON `json:"expenseCategories"`
	ExpenseShares     []categoryShareJSON  `json:"expenseShares"`
	InvestmentTypes   []categoryAmountJSON `json:"investmentTypes"`
	InvestmentShares  []categoryShareJSON  `json:"investmentShares"`

	Recent []entryJSON `json:"recent"`

	// Warnings surfaces conditions the engine permits but a user
	// should see, currently only over-withdrawn saving currencies.
	Warnings []string `json:"warnings,omitempty"`
}

// handleDashboard recomputes every dashboard figure from the current
// snapshot on each request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ov := report.BuildOverview(s.ledger.Entries())

	// Slices are initialized so empty collections serialize as [] and
	// chart clients always see arrays.
	out := dashboardJSON{
		TotalIncome:   ov.TotalIncome.Decimal(),
		TotalExpense:  ov.TotalExpense.Decimal(),
		NetBalance:    ov.NetBalance.Decimal(),
		TotalInvested: ov.TotalInvested.Decimal(),
		Savings:       make([]savingTotalJSON, 0, len(ov.Savings)),
		Recent:        toEntriesJSON(ov.Recent),
	}
	for _, st := range ov.Savings {
		out.Savings = append(out.Savings, savingTotalJSON{
			Currency: string(st.Currency),
			Balance:  st.Balance.Decimal(),
		})
	}
	out.ExpenseCategories = toCategoryAmounts(ov.ExpenseCategories)
	out.ExpenseShares = toCategoryShares(ov.ExpenseShares)
	out.InvestmentTypes = toCategoryAmounts(ov.InvestmentTypes)
	out.InvestmentShares = toCategoryShares(ov.InvestmentShares)
	for _, c := range ov.OverdrawnCurrencies {
		out.Warnings = append(out.Warnings, "saving balance for "+string(c)+" is negative")
	}

	writeJSON(w, http.StatusOK, out)
}

func toCategoryAmounts(in []report.CategoryAmount) []categoryAmountJSON {
	out := make([]categoryAmountJSON, len(in))
	for i, g := range in {
		out[i] = categoryAmountJSON{Name: g.Name, Amount: g.Amount.Decimal()}
	}
	return out
}

func toCategoryShares(in []report.CategoryShare) []categoryShareJSON {
	out := make([]categoryShareJSON, len(in))
	for i, sh := range in {
		out[i] = categoryShareJSON{Name: sh.Name, Percent: sh.Percent}
	}
	return out
}
