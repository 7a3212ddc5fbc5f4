package middleware

import (
	"net/http"

	"github.com/phrazzld/pig-api/internal/api/shared"
	"github.com/phrazzld/pig-api/internal/domain"
	"github.com/phrazzld/pig-api/internal/store"
)

// APIKeyHeader is the request header carrying the caller's key.
const APIKeyHeader = "apikey"

// AuthMiddleware resolves the apikey header to a person through the store.
type AuthMiddleware struct {
	gateway store.Gateway
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(gateway store.Gateway) *AuthMiddleware {
	if gateway == nil {
		panic("gateway cannot be nil")
	}
	return &AuthMiddleware{gateway: gateway}
}

// Authenticate rejects requests whose apikey header is missing, malformed or
// unknown. Malformed keys are rejected without touching the store.
//
// For accepted requests it stores the person id and the acquired session in
// the request context. The session stays open while next runs and is released
// when next returns, panics included.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if err := shared.ValidateAPIKey(key); err != nil {
			shared.RespondWithAPIError(w, r, err)
			return
		}

		session, err := m.gateway.Acquire(r.Context())
		if err != nil {
			shared.RespondWithAPIError(w, r, err)
			return
		}
		defer session.Release()

		personID, ok, err := session.ResolveAPIKey(r.Context(), key)
		if err != nil {
			shared.RespondWithAPIError(w, r, err)
			return
		}
		if !ok {
			shared.RespondWithAPIError(w, r, domain.ErrWrongAPIKey)
			return
		}

		ctx := shared.WithAuth(r.Context(), shared.Auth{PersonID: personID, Session: session})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
