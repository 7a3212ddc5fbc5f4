package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/pig-api/internal/api/shared"
	"github.com/phrazzld/pig-api/internal/platform/logger"
)

// Recover turns a handler panic into a 500 response. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection as intended.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), slog.Default()).
				Debug("panic stack", slog.String("stack", string(debug.Stack())))
			shared.RespondWithAPIError(w, r, fmt.Errorf("recovered panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
