package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/metrics"
	"github.com/sevigo/review-assistant/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, assistant core.CodeAssistant, m *metrics.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", m.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		h := handler.NewAssistantHandler(assistant, logger)
		r.Get("/health-check", h.HealthCheck)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
			r.Post("/pulls", h.Review)
			r.Post("/sample", h.Sample)
		})
	})

	return r
}
