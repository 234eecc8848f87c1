package http

import (
	"net/http"
)

type goalInput struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

type toggleInput struct {
	Done bool `json:"done"`
}

func (s *Server) handleListGoals(w http.ResponseWriter, _ *http.Request) {
	goals := s.ledger.Goals()
	out := make([]goalJSON, len(goals))
	for i, g := range goals {
		out[i] = toGoalJSON(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var in goalInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := s.ledger.AddGoal(r.Context(), in.Title, in.Note)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalJSON(g))
}

// handleToggleGoal sets the done flag. Repeating the same value is a
// no-op and still returns 204.
func (s *Server) handleToggleGoal(w http.ResponseWriter, r *http.Request) {
	var in toggleInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.ledger.SetGoalDone(r.Context(), r.PathValue("id"), in.Done); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteGoal(r.Context(), r.PathValue("id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
