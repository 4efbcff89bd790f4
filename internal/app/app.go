// Package app initializes and orchestrates the main components of the
// snippet-review service.
package app

import (
	"context"
	"log/slog"

	"github.com/codelens/snippet-review/internal/config"
	"github.com/codelens/snippet-review/internal/server"
)

// App holds the main application components.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp assembles the application from its wired components.
func NewApp(ctx context.Context, cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		server: srv,
		logger: logger,
	}
}

// Start runs the HTTP server and blocks until shutdown or error.
func (a *App) Start() error {
	a.logger.Info("starting snippet-review",
		"server_port", a.cfg.ServerPort,
		"llm_provider", a.cfg.LLMProvider,
		"generator_model", a.cfg.GeneratorModelName)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the HTTP server cleanly. The database pool is closed by the
// cleanup function returned from initialization.
func (a *App) Stop() error {
	a.logger.Info("shutting down snippet-review")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("snippet-review stopped successfully")
	return nil
}
