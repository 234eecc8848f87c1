package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hesab/internal/core"
	"hesab/internal/ledger"
)

// entryJSON is the API shape of an entry. Field names match the
// persisted blob format so clients see one vocabulary.
type entryJSON struct {
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

type goalJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
	Done  bool   `json:"done"`
}

func toEntryJSON(e core.Entry) entryJSON {
	out := entryJSON{
		ID:     e.ID,
		Type:   string(e.Kind),
		Date:   e.Date.Format(time.RFC3339Nano),
		Amount: e.Amount.Decimal(),
		Note:   e.Note,
	}
	switch {
	case e.Expense != nil:
		out.Category = e.Expense.Category
		out.Subcategory = e.Expense.Subcategory
	case e.Saving != nil:
		out.Currency = string(e.Saving.Currency)
		out.Delta = e.Saving.Delta.Decimal()
	case e.Investment != nil:
		out.Investment = string(e.Investment.Type)
	}
	return out
}

func toEntriesJSON(entries []core.Entry) []entryJSON {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = toEntryJSON(e)
	}
	return out
}

func toGoalJSON(g core.Goal) goalJSON {
	return goalJSON{ID: g.ID, Title: g.Title, Note: g.Note, Done: g.Done}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeLedgerError maps ledger and validation failures to statuses:
// bad input is the client's fault, a failed store write is reported as
// a bad gateway because the ledger already rolled the change back.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, ledger.ErrNothingToUndo):
		writeError(w, http.StatusConflict, err)
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusBadGateway, err)
	}
}

func isValidationError(err error) bool {
	for _, v := range []error{
		core.ErrInvalidAmount,
		core.ErrInvalidKind,
		core.ErrInvalidCurrency,
		core.ErrInvalidInvestment,
		core.ErrZeroDate,
		core.ErrKindPayloadMismatch,
		core.ErrZeroSavingDelta,
		core.ErrEmptyID,
		core.ErrEmptyTitle,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
