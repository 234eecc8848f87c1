package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hesab/internal/core"
)

// The blob format is a JSON array of flat records, one per entry or
// goal. Field names are part of the stored format and must not change.
// Kind-specific fields are omitted when absent so a round trip
// reproduces optional-field absence exactly. Amounts are decimal
// strings derived from cents, never floats.

type entryRecord struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Note        string `json:"note,omitempty"`
	Category    string `json:"expenseCategory,omitempty"`
	Subcategory string `json:"expenseSubcategory,omitempty"`
	Currency    string `json:"savingCurrency,omitempty"`
	Delta       string `json:"savingDelta,omitempty"`
	Investment  string `json:"investmentType,omitempty"`
}

type goalRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
	Done  bool   `json:"done"`
}

// EncodeEntries serializes the full entry list into one blob.
func EncodeEntries(entries []core.Entry) (string, error) {
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		rec := entryRecord{
			ID:     e.ID,
			Type:   string(e.Kind),
			Date:   e.Date.Format(time.RFC3339Nano),
			Amount: e.Amount.Decimal(),
			Note:   e.Note,
		}
		switch {
		case e.Expense != nil:
			rec.Category = e.Expense.Category
			rec.Subcategory = e.Expense.Subcategory
		case e.Saving != nil:
			rec.Currency = string(e.Saving.Currency)
			rec.Delta = e.Saving.Delta.Decimal()
		case e.Investment != nil:
			rec.Investment = string(e.Investment.Type)
		}
		records[i] = rec
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	return string(data), nil
}

// DecodeEntries parses a blob back into the entry list. An empty blob
// decodes to an empty list.
func DecodeEntries(blob string) ([]core.Entry, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, nil
	}
	var records []entryRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	entries := make([]core.Entry, 0, len(records))
	for _, rec := range records {
		e, err := decodeEntry(rec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeEntry(rec entryRecord) (core.Entry, error) {
	date, err := time.Parse(time.RFC3339Nano, rec.Date)
	if err != nil {
		return core.Entry{}, fmt.Errorf("entry %s: parse date %q: %w", rec.ID, rec.Date, err)
	}
	amount, err := core.ParseAmountToCents(rec.Amount)
	if err != nil {
		return core.Entry{}, fmt.Errorf("entry %s: parse amount %q: %w", rec.ID, rec.Amount, err)
	}
	e := core.Entry{
		ID:     rec.ID,
		Kind:   core.Kind(rec.Type),
		Date:   date,
		Amount: core.Money{Cents: amount},
		Note:   rec.Note,
	}
	switch e.Kind {
	case core.KindExpense:
		category := rec.Category
		if category == "" {
			category = core.FallbackCategory
		}
		e.Expense = &core.ExpenseDetail{Category: category, Subcategory: rec.Subcategory}
	case core.KindSaving:
		delta, err := core.ParseSignedAmountToCents(rec.Delta)
		if err != nil {
			return core.Entry{}, fmt.Errorf("entry %s: parse saving delta %q: %w", rec.ID, rec.Delta, err)
		}
		e.Saving = &core.SavingDetail{Currency: core.Currency(rec.Currency), Delta: core.Money{Cents: delta}}
	case core.KindInvestment:
		typ := core.InvestmentType(rec.Investment)
		if typ == "" {
			typ = core.OtherInvestment
		}
		e.Investment = &core.InvestmentDetail{Type: typ}
	}
	if err := e.Validate(); err != nil {
		return core.Entry{}, fmt.Errorf("entry %s: %w", rec.ID, err)
	}
	return e, nil
}

// EncodeGoals serializes the full goal list into one blob.
func EncodeGoals(goals []core.Goal) (string, error) {
	records := make([]goalRecord, len(goals))
	for i, g := range goals {
		records[i] = goalRecord{ID: g.ID, Title: g.Title, Note: g.Note, Done: g.Done}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal goals: %w", err)
	}
	return string(data), nil
}

// DecodeGoals parses a blob back into the goal list.
func DecodeGoals(blob string) ([]core.Goal, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, nil
	}
	var records []goalRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("unmarshal goals: %w", err)
	}
	goals := make([]core.Goal, len(records))
	for i, rec := range records {
		goals[i] = core.Goal{ID: rec.ID, Title: rec.Title, Note: rec.Note, Done: rec.Done}
		if err := goals[i].Validate(); err != nil {
			return nil, fmt.Errorf("goal %s: %w", rec.ID, err)
		}
	}
	return goals, nil
}
