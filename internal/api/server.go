// Package api provides the HTTP server for khata. Handlers are a thin
// presentation layer: they decode requests, call the core services, and
// render results. No business rules live here.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/identity"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/registry"
	"github.com/khata-dev/khata/internal/stock"
)

// Server is the khata HTTP API server.
type Server struct {
	registry *registry.Service
	engine   *ledger.Engine
	stock    *stock.Service
	auditLog *audit.Log
	identity *identity.Service

	metricsEnabled bool
	requireAuth    bool
}

// NewServer creates a new API server.
func NewServer(reg *registry.Service, eng *ledger.Engine, stk *stock.Service, log *audit.Log, ident *identity.Service) *Server {
	return &Server{registry: reg, engine: eng, stock: stk, auditLog: log, identity: ident}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// RequireAuth makes every /api route (except /api/auth) demand a
// session token.
func (s *Server) RequireAuth() { s.requireAuth = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Minute))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
		})

		r.Group(func(r chi.Router) {
			if s.requireAuth {
				r.Use(s.sessionMiddleware)
			}

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", s.handleListAccounts)
				r.Post("/", s.handleOpenAccount)
				r.Get("/{id}", s.handleGetAccount)
				r.Delete("/{id}", s.handleCloseAccount)
			})

			r.Post("/vouchers", s.handleSubmitVoucher)
			r.Get("/ledger/{accountID}", s.handleAccountLedger)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/trial-balance", s.handleTrialBalance)
				r.Get("/income-statement", s.handleIncomeStatement)
				r.Get("/balance-sheet", s.handleBalanceSheet)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Get("/", s.handleListStock)
				r.Post("/", s.handleAddStock)
			})

			r.Get("/audit", s.handleAuditLog)
			r.Get("/dashboard", s.handleDashboard)
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// sessionMiddleware resolves the bearer token to a username and rejects
// requests without a live session.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		username, ok := s.identity.Lookup(token)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid session"})
			return
		}
		next.ServeHTTP(w, r.WithContext(withUsername(r.Context(), username)))
	})
}
