package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hesab/internal/ledger"
	"hesab/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *ledger.Ledger) {
	t.Helper()
	led := ledger.New(storage.NewStore(storage.NewMemoryKV()), nil)
	require.NoError(t, led.Load(context.Background()))
	return NewServer("127.0.0.1:0", led), led
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboard(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{
		`{"kind":"income","date":"2025-03-01T00:00:00Z","amount":"1000"}`,
		`{"kind":"expense","date":"2025-03-02T00:00:00Z","amount":"300","expenseCategory":"Food"}`,
		`{"kind":"expense","date":"2025-03-03T00:00:00Z","amount":"200"}`,
		`{"kind":"saving","date":"2025-03-04T00:00:00Z","amount":"+500","savingCurrency":"IRR"}`,
		`{"kind":"saving","date":"2025-03-05T00:00:00Z","amount":"-150","savingCurrency":"IRR"}`,
	} {
		w := do(t, s, http.MethodPost, "/api/entries", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, s, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out dashboardJSON
	decodeInto(t, w, &out)

	assert.Equal(t, "1000.00", out.TotalIncome)
	assert.Equal(t, "500.00", out.TotalExpense)
	assert.Equal(t, "500.00", out.NetBalance)
	assert.Equal(t, "0.00", out.TotalInvested)

	require.Len(t, out.Savings, 1)
	assert.Equal(t, "IRR", out.Savings[0].Currency)
	assert.Equal(t, "350.00", out.Savings[0].Balance)

	require.Len(t, out.ExpenseCategories, 2)
	assert.Equal(t, categoryAmountJSON{Name: "Food", Amount: "300.00"}, out.ExpenseCategories[0])
	assert.Equal(t, categoryAmountJSON{Name: "Other", Amount: "200.00"}, out.ExpenseCategories[1])

	require.Len(t, out.ExpenseShares, 2)
	assert.Equal(t, 60, out.ExpenseShares[0].Percent)
	assert.Equal(t, 40, out.ExpenseShares[1].Percent)

	require.Len(t, out.Recent, 5)
	assert.Equal(t, "2025-03-05T00:00:00Z", out.Recent[0].Date, "newest first")
	assert.Empty(t, out.Warnings)
}

func TestDashboardEmptySnapshotSerializesArrays(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, field := range []string{
		`"savings":[]`,
		`"expenseCategories":[]`,
		`"expenseShares":[]`,
		`"investmentTypes":[]`,
		`"investmentShares":[]`,
		`"recent":[]`,
	} {
		assert.Contains(t, body, field, "empty collections must serialize as arrays, not null")
	}
}

func TestDashboardWarnsOnOverdrawnSaving(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/entries",
		`{"kind":"saving","date":"2025-03-01T00:00:00Z","amount":"-10","savingCurrency":"USD"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, s, http.MethodGet, "/api/dashboard", "")
	var out dashboardJSON
	decodeInto(t, w, &out)

	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "USD")
}

func TestCreateEntryValidation(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{not json`, http.StatusBadRequest},
		{"unknown field", `{"kind":"income","amount":"10","bogus":1}`, http.StatusBadRequest},
		{"bad amount", `{"kind":"income","amount":"abc"}`, http.StatusUnprocessableEntity},
		{"zero amount", `{"kind":"income","amount":"0"}`, http.StatusUnprocessableEntity},
		{"bad kind", `{"kind":"loan","amount":"10"}`, http.StatusUnprocessableEntity},
		{"saving without currency", `{"kind":"saving","amount":"+10"}`, http.StatusUnprocessableEntity},
		{"zero saving delta", `{"kind":"saving","amount":"0","savingCurrency":"IRR"}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/entries", tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}

	w := do(t, s, http.MethodGet, "/api/entries", "")
	var list []entryJSON
	decodeInto(t, w, &list)
	assert.Empty(t, list, "rejected input must not be stored")
}

func TestEntryLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/entries",
		`{"kind":"expense","date":"2025-03-01T00:00:00Z","amount":"30","expenseCategory":"Food"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created entryJSON
	decodeInto(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "30.00", created.Amount)

	// Whole-value edit keeps the path id.
	w = do(t, s, http.MethodPut, "/api/entries/"+created.ID,
		`{"kind":"expense","date":"2025-03-01T00:00:00Z","amount":"35","expenseCategory":"Transport"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated entryJSON
	decodeInto(t, w, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "35.00", updated.Amount)
	assert.Equal(t, "Transport", updated.Category)

	w = do(t, s, http.MethodPut, "/api/entries/missing",
		`{"kind":"expense","amount":"1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodDelete, "/api/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodDelete, "/api/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/api/entries/undo", "")
	require.Equal(t, http.StatusOK, w.Code)
	var restored entryJSON
	decodeInto(t, w, &restored)
	assert.Equal(t, created.ID, restored.ID)

	w = do(t, s, http.MethodPost, "/api/entries/undo", "")
	assert.Equal(t, http.StatusConflict, w.Code, "second undo has nothing left")
}

func TestListEntriesQueryAndLimit(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{
		`{"kind":"income","date":"2025-03-01T00:00:00Z","amount":"10","note":"salary"}`,
		`{"kind":"expense","date":"2025-03-02T00:00:00Z","amount":"5","note":"groceries"}`,
		`{"kind":"expense","date":"2025-03-03T00:00:00Z","amount":"7","note":"fuel"}`,
	} {
		w := do(t, s, http.MethodPost, "/api/entries", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, s, http.MethodGet, "/api/entries?q=salary", "")
	var list []entryJSON
	decodeInto(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "income", list[0].Type)

	w = do(t, s, http.MethodGet, "/api/entries?limit=2", "")
	list = nil
	decodeInto(t, w, &list)
	assert.Len(t, list, 2)
}

func TestGoalEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/goals", `{"title":"bicycle","note":"city bike"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created goalJSON
	decodeInto(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Done)

	w = do(t, s, http.MethodPost, "/api/goals", `{"title":"  "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, s, http.MethodPost, "/api/goals/"+created.ID+"/toggle", `{"done":true}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Same value again stays 204.
	w = do(t, s, http.MethodPost, "/api/goals/"+created.ID+"/toggle", `{"done":true}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/api/goals", "")
	var list []goalJSON
	decodeInto(t, w, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Done)

	w = do(t, s, http.MethodPost, "/api/goals/missing/toggle", `{"done":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodDelete, "/api/goals/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/api/goals", "")
	list = nil
	decodeInto(t, w, &list)
	assert.Empty(t, list)
}
