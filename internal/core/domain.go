package core

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindSaving     Kind = "saving"
	KindInvestment Kind = "investment"
)

const (
	IRR Currency = "IRR"
	USD Currency = "USD"
)

const (
	Gold            InvestmentType = "Gold"
	Stocks          InvestmentType = "Stocks"
	Crypto          InvestmentType = "Crypto"
	OtherInvestment InvestmentType = "Other"
)

// FallbackCategory is used when an expense is recorded without a category.
const FallbackCategory = "Other"

type (
	Kind           string
	Currency       string
	InvestmentType string

	Money struct {
		Cents int64
	}

	// ExpenseDetail is the payload carried only by expense entries.
	ExpenseDetail struct {
		Category    string
		Subcategory string // optional second-level label
	}

	// SavingDetail is the payload carried only by saving entries.
	// Delta is signed: positive means deposit, negative means withdrawal.
	SavingDetail struct {
		Currency Currency
		Delta    Money
	}

	// InvestmentDetail is the payload carried only by investment entries.
	InvestmentDetail struct {
		Type InvestmentType
	}

	// Entry is one recorded transaction. Exactly one of the detail
	// pointers is set, and which one is determined by Kind. Amount is
	// always the absolute magnitude; for savings the sign lives in
	// Saving.Delta.
	Entry struct {
		ID     string
		Kind   Kind
		Date   time.Time
		Amount Money
		Note   string

		Expense    *ExpenseDetail
		Saving     *SavingDetail
		Investment *InvestmentDetail
	}
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidKind         = errors.New("invalid entry kind")
	ErrInvalidCurrency     = errors.New("invalid saving currency")
	ErrInvalidInvestment   = errors.New("invalid investment type")
	ErrZeroDate            = errors.New("date cannot be zero")
	ErrKindPayloadMismatch = errors.New("entry payload does not match kind")
	ErrZeroSavingDelta     = errors.New("saving delta cannot be zero")
	ErrEmptyID             = errors.New("empty entry id")
)

func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindSaving, KindInvestment:
		return true
	default:
		return false
	}
}

func (c Currency) IsValid() bool {
	return c == IRR || c == USD
}

func (t InvestmentType) IsValid() bool {
	switch t {
	case Gold, Stocks, Crypto, OtherInvestment:
		return true
	default:
		return false
	}
}

// NewID returns a fresh opaque id. Ids are never derived from entry
// content, so two identical transactions stay independently editable.
func NewID() string {
	return uuid.NewString()
}

// NewIncome builds an income entry with a fresh id.
func NewIncome(date time.Time, amount Money, note string) Entry {
	return Entry{ID: NewID(), Kind: KindIncome, Date: date, Amount: amount, Note: note}
}

// NewExpense builds an expense entry. An empty category falls back to
// FallbackCategory instead of failing.
func NewExpense(date time.Time, amount Money, category, subcategory, note string) Entry {
	category = strings.TrimSpace(category)
	if category == "" {
		category = FallbackCategory
	}
	return Entry{
		ID: NewID(), Kind: KindExpense, Date: date, Amount: amount, Note: note,
		Expense: &ExpenseDetail{Category: category, Subcategory: strings.TrimSpace(subcategory)},
	}
}

// NewSaving builds a saving entry from a signed delta. Amount is stored
// as |delta|.
func NewSaving(date time.Time, currency Currency, delta Money, note string) Entry {
	amount := delta
	if amount.Cents < 0 {
		amount.Cents = -amount.Cents
	}
	return Entry{
		ID: NewID(), Kind: KindSaving, Date: date, Amount: amount, Note: note,
		Saving: &SavingDetail{Currency: currency, Delta: delta},
	}
}

// NewInvestment builds an investment entry. An empty type falls back to
// OtherInvestment.
func NewInvestment(date time.Time, amount Money, typ InvestmentType, note string) Entry {
	if typ == "" {
		typ = OtherInvestment
	}
	return Entry{
		ID: NewID(), Kind: KindInvestment, Date: date, Amount: amount, Note: note,
		Investment: &InvestmentDetail{Type: typ},
	}
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if !e.Kind.IsValid() {
		return ErrInvalidKind
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if e.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return e.validatePayload()
}

func (e Entry) validatePayload() error {
	switch e.Kind {
	case KindIncome:
		if e.Expense != nil || e.Saving != nil || e.Investment != nil {
			return ErrKindPayloadMismatch
		}
	case KindExpense:
		if e.Expense == nil || e.Saving != nil || e.Investment != nil {
			return ErrKindPayloadMismatch
		}
		if strings.TrimSpace(e.Expense.Category) == "" {
			return ErrKindPayloadMismatch
		}
	case KindSaving:
		if e.Saving == nil || e.Expense != nil || e.Investment != nil {
			return ErrKindPayloadMismatch
		}
		if !e.Saving.Currency.IsValid() {
			return ErrInvalidCurrency
		}
		if e.Saving.Delta.Cents == 0 {
			return ErrZeroSavingDelta
		}
		abs := e.Saving.Delta.Cents
		if abs < 0 {
			abs = -abs
		}
		if abs != e.Amount.Cents {
			return ErrKindPayloadMismatch
		}
	case KindInvestment:
		if e.Investment == nil || e.Expense != nil || e.Saving != nil {
			return ErrKindPayloadMismatch
		}
		if !e.Investment.Type.IsValid() {
			return ErrInvalidInvestment
		}
	}
	return nil
}

// SortEntriesDesc sorts entries newest first. The sort is stable so
// entries sharing a date keep their relative order from the list.
func SortEntriesDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
