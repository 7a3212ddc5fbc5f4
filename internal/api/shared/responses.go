package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/pig-api/internal/domain"
	"github.com/phrazzld/pig-api/internal/platform/logger"
	"github.com/phrazzld/pig-api/internal/redact"
	"github.com/phrazzld/pig-api/internal/store"
)

// InternalErrorMessage is the only text a 500 response ever carries.
const InternalErrorMessage = "internal server error"

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		requestLogger(r).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithResult writes a stored routine's outcome: its status verbatim and
// its payload bytes as the body, without re-encoding.
func RespondWithResult(w http.ResponseWriter, r *http.Request, result store.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.Status)
	if _, err := w.Write(result.Payload); err != nil {
		requestLogger(r).Debug("failed to write result body", "error", err, "status_code", result.Status)
	}
}

// RespondNotFound writes 404 with an empty JSON object.
func RespondNotFound(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusNotFound, struct{}{})
}

// RespondWithAPIError translates err into a response.
//
// Client rejections (*domain.APIError) answer with their own status and
// message, or with an empty object for 404s, and are logged at debug level.
// Everything else, gateway failures included, answers 500 with a fixed
// message; the redacted cause goes to the error log only.
func RespondWithAPIError(w http.ResponseWriter, r *http.Request, err error) {
	log := requestLogger(r)

	if apiErr, ok := domain.AsAPIError(err); ok {
		log.LogAttrs(r.Context(), slog.LevelDebug, "API error response",
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.Int("status_code", apiErr.Status),
			slog.String("kind", string(apiErr.Kind)),
		)
		if apiErr.IsNotFound() {
			RespondNotFound(w, r)
			return
		}
		RespondWithJSON(w, r, apiErr.Status, ErrorResponse{Error: apiErr.Message})
		return
	}

	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", http.StatusInternalServerError),
		slog.Bool("gateway_failure", store.IsGatewayFailure(err)),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)),
		)
	}
	var gwErr *store.GatewayError
	if errors.As(err, &gwErr) {
		attrs = append(attrs, slog.String("routine", gwErr.Routine))
	}
	log.LogAttrs(r.Context(), slog.LevelError, "API error response", attrs...)

	RespondWithJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: InternalErrorMessage})
}

// requestLogger returns the request-scoped logger, which already carries the
// trace id, or the default logger tagged with the trace id if there is one.
func requestLogger(r *http.Request) *slog.Logger {
	if log := logger.FromContext(r.Context()); log != nil {
		return log
	}
	log := slog.Default()
	if traceID := GetTraceID(r.Context()); traceID != "" {
		log = log.With(slog.String("trace_id", traceID))
	}
	return log
}
