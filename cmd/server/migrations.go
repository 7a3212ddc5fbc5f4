package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/pig-api/internal/platform/postgres"
)

// handleMigrations runs one goose command over a database/sql view of pool.
func handleMigrations(ctx context.Context, pool *pgxpool.Pool, command string, logger *slog.Logger) error {
	logger.Info("Executing migrations", "command", command)

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close migration connection", "error", err)
		}
	}()

	return postgres.Migrate(ctx, db, command, logger)
}
