package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/pig-api/internal/store"
)

// ContextKey is the type of request context keys owned by this package.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// AuthContextKey is the key for the authenticated identity.
	AuthContextKey ContextKey = "auth"
)

// Auth is the outcome of a successful authentication: the resolved person and
// the store session opened for the request. Handlers issue their single
// business call through Session; the auth middleware releases it.
type Auth struct {
	PersonID int
	Session  store.Session
}

// SetTraceID adds a fresh random trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithAuth stores the authenticated identity in the context.
func WithAuth(ctx context.Context, auth Auth) context.Context {
	return context.WithValue(ctx, AuthContextKey, auth)
}

// AuthFromContext returns the authenticated identity, if any. An identity
// without a session is treated as absent.
func AuthFromContext(ctx context.Context) (Auth, bool) {
	auth, ok := ctx.Value(AuthContextKey).(Auth)
	if !ok || auth.Session == nil {
		return Auth{}, false
	}
	return auth, true
}
