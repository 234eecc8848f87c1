package core

import (
	"time"
)

// EntryInput is the raw form data an entry is built from. Amount is the
// untrusted text the user typed; kind-specific selectors may be empty
// and fall back to their defaults.
type EntryInput struct {
	Kind        Kind           `json:"kind"`
	Date        time.Time      `json:"date"`
	Amount      string         `json:"amount"`
	Note        string         `json:"note"`
	Category    string         `json:"expenseCategory"`
	Subcategory string         `json:"expenseSubcategory"`
	Currency    Currency       `json:"savingCurrency"`
	Investment  InvestmentType `json:"investmentType"`
}

// BuildEntry turns raw input into a validated entry with a fresh id.
// For income, expense and investment the amount must parse to a value
// greater than zero; for savings the amount is signed and must be
// nonzero, with the sign carrying deposit/withdraw meaning. A zero date
// defaults to the current time.
func BuildEntry(in EntryInput) (Entry, error) {
	if !in.Kind.IsValid() {
		return Entry{}, ErrInvalidKind
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var e Entry
	switch in.Kind {
	case KindSaving:
		if !in.Currency.IsValid() {
			return Entry{}, ErrInvalidCurrency
		}
		cents, err := ParseSignedAmountToCents(in.Amount)
		if err != nil {
			return Entry{}, err
		}
		e = NewSaving(date, in.Currency, Money{Cents: cents}, in.Note)
	default:
		cents, err := ParseAmountToCents(in.Amount)
		if err != nil {
			return Entry{}, err
		}
		amount := Money{Cents: cents}
		switch in.Kind {
		case KindIncome:
			e = NewIncome(date, amount, in.Note)
		case KindExpense:
			e = NewExpense(date, amount, in.Category, in.Subcategory, in.Note)
		case KindInvestment:
			if in.Investment != "" && !in.Investment.IsValid() {
				return Entry{}, ErrInvalidInvestment
			}
			e = NewInvestment(date, amount, in.Investment, in.Note)
		}
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}
