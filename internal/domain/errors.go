package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError for logging and response shaping.
type Kind string

// Error kinds.
const (
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
)

// APIError is a client-side rejection detected before the store is consulted.
// Status is the HTTP status to answer with; Message is safe to show callers.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s error (%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
}

// IsNotFound reports whether the error answers with 404. Such responses carry
// an empty JSON object instead of an error message.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// NewAPIError creates an APIError.
func NewAPIError(kind Kind, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message}
}

var (
	// ErrMissingAPIKey is returned when the apikey header is absent or malformed.
	ErrMissingAPIKey = NewAPIError(KindAuth, http.StatusUnauthorized, "needs apikey header")

	// ErrWrongAPIKey is returned when a well-formed key does not resolve to a person.
	ErrWrongAPIKey = NewAPIError(KindAuth, http.StatusUnauthorized, "wrong apikey")

	// ErrMissingName is returned when a body lacks the required name field.
	ErrMissingName = NewAPIError(KindValidation, http.StatusPreconditionFailed, "missing name")

	// ErrResourceOutOfRange is returned for path ids outside the valid bounds.
	ErrResourceOutOfRange = NewAPIError(KindValidation, http.StatusNotFound, "")

	// ErrRouteNotFound is returned when no route matches the method and path.
	ErrRouteNotFound = NewAPIError(KindNotFound, http.StatusNotFound, "")

	// ErrUnauthenticated is returned when a protected handler runs without an
	// identity in its context. It indicates a wiring fault, not a client error.
	ErrUnauthenticated = errors.New("request context carries no authenticated identity")
)

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
