package testdb

import (
	"context"
	_ "embed"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/pig-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

//go:embed testdata/seed.sql
var seedSQL string

// SetupPool connects to the test database, applies all migrations and
// returns a pool closed at test cleanup. The test is skipped when no
// database is configured.
func SetupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("DATABASE_URL or PIG_TEST_DB_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, GetTestDatabaseURL())
	require.NoError(t, err, "failed to create test pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "test database is unreachable")

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()
	require.NoError(t, postgres.Migrate(ctx, db, "up", slog.Default()), "failed to migrate test database")

	return pool
}

// ResetData replaces all rows with the seed data.
func ResetData(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	// Exec without arguments uses the simple protocol, which accepts
	// several statements at once.
	_, err := pool.Exec(ctx, seedSQL)
	require.NoError(t, err, "failed to load seed data")
}

// SetupGateway returns a gateway over a migrated and freshly seeded database.
func SetupGateway(t *testing.T) (*postgres.Gateway, *pgxpool.Pool) {
	t.Helper()

	pool := SetupPool(t)
	ResetData(t, pool)
	return postgres.NewGateway(pool, postgres.DefaultSchema, slog.Default()), pool
}
