package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/pig-api/internal/config"
	"github.com/phrazzld/pig-api/internal/platform/postgres"
	"github.com/phrazzld/pig-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// pool is nil in tests that supply their own gateway.
	pool    *pgxpool.Pool
	gateway store.Gateway
}

// newApplication creates a new application instance over an established pool.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *application {
	return &application{
		config:  cfg,
		logger:  logger,
		pool:    pool,
		gateway: postgres.NewGateway(pool, cfg.Database.Schema, logger),
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}
	app.logger.Info("Application shutdown completed")
}
