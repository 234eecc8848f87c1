// Package http serves the JSON API the dashboard UI talks to. Every
// read recomputes its figures from the current snapshot; there is no
// cached aggregation to invalidate.
package http

import (
	"context"
	"net/http"
	"time"

	"hesab/internal/ledger"
	"hesab/internal/middleware/trace"
)

// Server wires the ledger to the HTTP mux.
type Server struct {
	ledger *ledger.Ledger
	http   *http.Server
}

// NewServer builds the API server listening on addr.
func NewServer(addr string, led *ledger.Ledger) *Server {
	s := &Server{ledger: led}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/entries", s.handleListEntries)
	mux.HandleFunc("POST /api/entries", s.handleCreateEntry)
	mux.HandleFunc("PUT /api/entries/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", s.handleDeleteEntry)
	mux.HandleFunc("POST /api/entries/undo", s.handleUndoDelete)

	mux.HandleFunc("GET /api/goals", s.handleListGoals)
	mux.HandleFunc("POST /api/goals", s.handleCreateGoal)
	mux.HandleFunc("POST /api/goals/{id}/toggle", s.handleToggleGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", s.handleDeleteGoal)

	traced := trace.NewMiddleware().Middleware(mux)

	s.http = &http.Server{
		Addr:           addr,
		Handler:        traced,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
