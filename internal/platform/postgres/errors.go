package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/pig-api/internal/store"
)

// PostgreSQL error codes the gateway reports on.
const (
	undefinedFunctionCode = "42883"
	queryCanceledCode     = "57014"
	// connection exception class
	connectionExceptionClass = "08"
)

// MapError converts a failed routine call into a *store.GatewayError. The
// original error stays wrapped for operators; callers only ever surface it as
// an opaque internal error.
func MapError(routine string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.NewGatewayError(routine, errors.Join(store.ErrNoResult, err))
	}
	return store.NewGatewayError(routine, err)
}

// IsUndefinedFunction reports whether err means the stored routine does not
// exist, which usually points at a missing migration or wrong schema setting.
func IsUndefinedFunction(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedFunctionCode
}

// IsCanceled reports whether the call was aborted by cancellation or a
// deadline, either client side or via statement cancellation on the server.
func IsCanceled(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == queryCanceledCode
}

// IsConnectionFailure reports whether err is a connection level fault.
func IsConnectionFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == connectionExceptionClass
	}
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// errorAttrs describes err for the operator log.
func errorAttrs(err error) []slog.Attr {
	attrs := []slog.Attr{
		slog.Bool("canceled", IsCanceled(err)),
		slog.Bool("timeout", pgconn.Timeout(err)),
		slog.Bool("connection_failure", IsConnectionFailure(err)),
		slog.Bool("undefined_function", IsUndefinedFunction(err)),
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs = append(attrs,
			slog.String("pg_code", pgErr.Code),
			slog.String("pg_severity", pgErr.Severity),
			slog.String("pg_routine", pgErr.Routine),
		)
	}
	return attrs
}
