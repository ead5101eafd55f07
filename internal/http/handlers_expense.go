package http

import (
	"errors"
	"log/slog"
	"net/http"

	"expensetracker/internal/core"
	"expensetracker/internal/services"
)

// handleListExpenses returns the collection, narrowed by the optional
// start, end, category and q query parameters.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := core.FilterOptions{
		StartDate:   q.Get("start"),
		EndDate:     q.Get("end"),
		SearchQuery: q.Get("q"),
	}
	if raw := q.Get("category"); raw != "" {
		category, err := core.ParseCategory(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		opts.Category = category
	}

	writeJSON(w, r, http.StatusOK, s.expenses.Filter(r.Context(), opts))
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	date, amount, category, description, fields, err := parseExpenseRequest(r.Body)
	if err != nil {
		slog.WarnContext(r.Context(), "Malformed expense payload", "error", err)
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	if fields != nil {
		writeValidationErrors(w, r, fields)
		return
	}

	created := s.expenses.Add(r.Context(), core.NewExpense(date, amount, category, description))
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := s.expenses.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "expense not found")
		return
	}
	writeJSON(w, r, http.StatusOK, expense)
}

// handleUpdateExpense replaces a record wholesale; there are no
// partial-field patch semantics. The stored id and createdAt are preserved
// by the service regardless of what the body carries.
func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	date, amount, category, description, fields, err := parseExpenseRequest(r.Body)
	if err != nil {
		slog.WarnContext(r.Context(), "Malformed expense payload", "error", err)
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	if fields != nil {
		writeValidationErrors(w, r, fields)
		return
	}

	updated, err := s.expenses.Update(r.Context(), core.Expense{
		ID:          r.PathValue("id"),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	})
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "expense not found")
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if !s.expenses.Delete(r.Context(), r.PathValue("id")) {
		writeError(w, r, http.StatusNotFound, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
