// Package app runs the review assistant HTTP service.
package app

import (
	"log/slog"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/server"
)

// App holds the main application components.
type App struct {
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	logger.Info("review assistant initialized",
		"review_assistant_id", cfg.OpenAI.ReviewAssistantID,
		"sample_assistant_id", cfg.OpenAI.SampleAssistantID,
		"run_timeout", cfg.Poll.Timeout,
		"batch_concurrency", cfg.BatchConcurrency)

	return &App{
		cfg:    cfg,
		server: srv,
		logger: logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting review assistant", "server_port", a.cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. In-flight exchanges are given the
// server's shutdown grace period to finish.
func (a *App) Stop() error {
	a.logger.Info("shutting down review assistant")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("review assistant stopped with errors", "error", err)
		return err
	}

	a.logger.Info("review assistant stopped successfully")
	return nil
}
