// Package http exposes the expense data layer as a JSON API: CRUD and
// filtering over records, the dashboard summary, chart series and CSV
// export. It holds no business logic; handlers parse, validate, delegate
// to the service and render.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

type Server struct {
	http.Server
	expenses *services.ExpenseService
	logger   *slog.Logger
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, expenses *services.ExpenseService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		expenses: expenses,
		logger:   applog.ForComponent("http"),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/expenses", s.withRequestLog(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.withRequestLog(s.handleCreateExpense))
	mux.HandleFunc("GET /api/expenses/{id}", s.withRequestLog(s.handleGetExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.withRequestLog(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.withRequestLog(s.handleDeleteExpense))

	mux.HandleFunc("GET /api/dashboard", s.withRequestLog(s.handleDashboard))
	mux.HandleFunc("GET /api/chart/categories", s.withRequestLog(s.handleCategoryChart))
	mux.HandleFunc("GET /api/export", s.withRequestLog(s.handleExport))

	return s
}

// withRequestLog adds a request ID, security headers and structured request
// logging to a handler.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(r.Context(), "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
