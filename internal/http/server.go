// Package http exposes the JSON API: auth, expense CRUD, aggregate
// summaries, budgets, preferences, the dashboard fan-out and CSV export.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"spendwise/internal/auth"
	"spendwise/internal/log"
	"spendwise/internal/services"
)

type Server struct {
	http.Server

	auth      *auth.Service
	expenses  *services.ExpenseService
	budgets   *services.BudgetService
	prefs     *services.PreferencesService
	dashboard *services.DashboardService

	rateLimiter  *rateLimiter
	logger       *log.Logger
	shutdownOnce sync.Once
}

func NewServer(addr string, authSvc *auth.Service, expenses *services.ExpenseService, budgets *services.BudgetService, prefs *services.PreferencesService, dashboard *services.DashboardService, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		auth:        authSvc,
		expenses:    expenses,
		budgets:     budgets,
		prefs:       prefs,
		dashboard:   dashboard,
		rateLimiter: newRateLimiter(),
		logger:      logger.WithComponent(log.ComponentHTTP),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/auth/register", s.public(s.handleRegister))
	mux.HandleFunc("POST /api/auth/login", s.public(s.handleLogin))
	mux.HandleFunc("POST /api/auth/logout", s.public(s.handleLogout))
	mux.HandleFunc("GET /api/auth/me", s.protected(s.handleMe))

	mux.HandleFunc("GET /api/expenses", s.protected(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.protected(s.handleCreateExpense))
	mux.HandleFunc("GET /api/expenses/{id}", s.protected(s.handleGetExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.protected(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.protected(s.handleDeleteExpense))
	mux.HandleFunc("GET /api/expenses/summary", s.protected(s.handleExpenseSummary))
	mux.HandleFunc("GET /api/expenses/daily", s.protected(s.handleDailySpending))
	mux.HandleFunc("GET /api/expenses/today", s.protected(s.handleTodayExpenses))

	mux.HandleFunc("GET /api/budgets", s.protected(s.handleListBudgets))
	mux.HandleFunc("POST /api/budgets", s.protected(s.handleUpsertBudget))
	mux.HandleFunc("DELETE /api/budgets", s.protected(s.handleDeleteBudget))
	mux.HandleFunc("GET /api/budgets/single", s.protected(s.handleGetBudget))
	mux.HandleFunc("GET /api/budgets/status", s.protected(s.handleBudgetStatus))

	mux.HandleFunc("GET /api/preferences", s.protected(s.handleGetPreferences))
	mux.HandleFunc("PUT /api/preferences", s.protected(s.handleUpdatePreferences))

	mux.HandleFunc("GET /api/dashboard", s.protected(s.handleDashboard))
	mux.HandleFunc("GET /api/reports/export", s.protected(s.handleExportReport))

	return s
}

// public wraps a handler with the base middleware: security headers,
// request id, rate limiting on mutating methods, request logging.
func (s *Server) public(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		reqLogger := s.logger.With(log.FieldRequestID, requestID)
		r = r.WithContext(log.NewContext(r.Context(), reqLogger))
		reqLogger.InfoContext(r.Context(), "Request started",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, clientIP,
			log.FieldUserAgent, r.Header.Get("User-Agent"))

		if isMutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			reqLogger.WarnContext(r.Context(), "Rate limit exceeded",
				log.FieldClientIP, clientIP,
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", retryAfterSeconds)
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		reqLogger.InfoContext(r.Context(), "Request completed",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, clientIP)
	}
}

// protected additionally resolves the session cookie and puts the
// authenticated user on the request context. Every protected operation
// checks authentication first and short-circuits with 401.
func (s *Server) protected(next http.HandlerFunc) http.HandlerFunc {
	return s.public(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.auth.Authenticate(r.Context(), sessionToken(r))
		if err != nil {
			respondAuthError(w, r, err)
			return
		}
		next(w, r.WithContext(auth.WithUser(r.Context(), user)))
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
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

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Shutdown stops the rate limiter cleanup goroutine and the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
