package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/pig-api/internal/store"
)

// DefaultSchema is the schema holding the stored routines.
const DefaultSchema = "pig"

// Gateway implements store.Gateway by acquiring one pooled connection per
// session.
type Gateway struct {
	pool   *pgxpool.Pool
	schema string
	logger *slog.Logger
}

// Ensure Gateway implements store.Gateway interface
var _ store.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway over pool calling routines in schema.
// The pool is owned by the caller.
func NewGateway(pool *pgxpool.Pool, schema string, logger *slog.Logger) *Gateway {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if schema == "" {
		schema = DefaultSchema
	}

	return &Gateway{
		pool:   pool,
		schema: schema,
		logger: logger.With(slog.String("component", "gateway")),
	}
}

// Acquire implements store.Gateway.Acquire. The returned session holds its
// connection exclusively until Release.
func (g *Gateway) Acquire(ctx context.Context) (store.Session, error) {
	conn, err := g.pool.Acquire(ctx)
	if err != nil {
		return nil, store.NewGatewayError("acquire", err)
	}
	return newSession(conn, conn.Release, g.schema, g.logger), nil
}

// Ping checks that the pool can reach the database.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.pool.Ping(ctx); err != nil {
		return store.NewGatewayError("ping", err)
	}
	return nil
}
