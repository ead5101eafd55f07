package http

import (
	"net/http"
	"time"

	"expensetracker/internal/core"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.expenses.Summary(r.Context()))
}

func (s *Server) handleCategoryChart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.expenses.CategoryChart(r.Context()))
}

// handleExport serves the collection as a CSV attachment with the dated
// filename presentation is expected to save it under.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	csv := s.expenses.ExportCSV(r.Context())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+core.ExportFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
