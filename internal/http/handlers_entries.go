package http

import (
	"net/http"
	"strconv"
	"strings"

	"hesab/internal/core"
	"hesab/internal/report"
)

// handleListEntries returns the snapshot newest first, optionally
// fuzzy-filtered by note (?q=) and truncated (?limit=).
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.ledger.Entries()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		entries = report.SearchNotes(entries, query)
	}
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			entries = report.RecentEntries(entries, n)
		}
	}

	writeJSON(w, http.StatusOK, toEntriesJSON(entries))
}

// handleCreateEntry builds an entry from raw form input. Parse and
// validation failures come back 422 without touching storage.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var in core.EntryInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	e, err := s.ledger.AddEntry(r.Context(), in)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryJSON(e))
}

// handleUpdateEntry replaces an entry wholesale: the body is the same
// raw input as create, and the stored value is a brand-new entry
// carrying the path id.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var in core.EntryInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	e, err := core.BuildEntry(in)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	e.ID = id

	if err := s.ledger.UpdateEntry(r.Context(), e); err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryJSON(e))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteEntry(r.Context(), r.PathValue("id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUndoDelete restores the most recently deleted entry.
func (s *Server) handleUndoDelete(w http.ResponseWriter, r *http.Request) {
	e, err := s.ledger.UndoDelete(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryJSON(e))
}
