package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avd/splitbook/internal/adapter/http/handler"
	"github.com/avd/splitbook/internal/adapter/http/middleware"
	"github.com/avd/splitbook/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	SessionHandler     *handler.SessionHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
	RequestLogger      *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.RequestLogger != nil {
		r.Use(cfg.RequestLogger.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{name}", cfg.AccountHandler.Get)
		})

		// Transactions and their edit sessions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/{id}", cfg.TransactionHandler.Get)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)

			r.Route("/{id}/session", func(r chi.Router) {
				r.Post("/", cfg.SessionHandler.Open)
				r.Get("/", cfg.SessionHandler.Get)
				r.Delete("/", cfg.SessionHandler.Discard)
				r.Post("/save", cfg.SessionHandler.Save)
				r.Put("/amount", cfg.SessionHandler.SetAmount)
				r.Put("/fields", cfg.SessionHandler.EditFields)
				r.Post("/splits", cfg.SessionHandler.AddSplit)
				r.Put("/splits/{index}", cfg.SessionHandler.EditSplit)
				r.Delete("/splits/{index}", cfg.SessionHandler.RemoveSplit)
			})
		})

		// Draft sessions over brand-new transactions
		r.Post("/sessions", cfg.SessionHandler.OpenDraft)
	})

	return r
}
