package store

import (
	"errors"
	"fmt"
)

var (
	// ErrGatewayFailure marks any failure to obtain a well-formed Result from
	// the store: connection, transport, SQL-contract or decoding faults. It is
	// always answered with a generic 500 and never passed through as a status.
	ErrGatewayFailure = errors.New("gateway failure")

	// ErrInvalidStatus is returned when a routine answers with a status outside
	// the legal HTTP range.
	ErrInvalidStatus = fmt.Errorf("%w: routine returned invalid http status", ErrGatewayFailure)

	// ErrInvalidPayload is returned when a routine answers with a NULL or
	// non-JSON payload.
	ErrInvalidPayload = fmt.Errorf("%w: routine returned invalid json payload", ErrGatewayFailure)

	// ErrNoResult is returned when a routine produces no row.
	ErrNoResult = fmt.Errorf("%w: routine returned no row", ErrGatewayFailure)
)

// GatewayError carries the context of a failed store call. The wrapped error
// is for operators only; it must never reach a response body.
type GatewayError struct {
	Routine string // stored routine or step that failed, e.g. "thing_get" or "acquire"
	Err     error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gateway call %s failed", e.Routine)
	}
	return fmt.Sprintf("gateway call %s failed: %v", e.Routine, e.Err)
}

// Unwrap exposes the underlying cause. ErrGatewayFailure is always reachable
// through errors.Is, whatever the cause.
func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGatewayFailure}
	}
	return []error{ErrGatewayFailure, e.Err}
}

// NewGatewayError wraps err as a failure of routine.
func NewGatewayError(routine string, err error) *GatewayError {
	return &GatewayError{Routine: routine, Err: err}
}

// IsGatewayFailure reports whether err is a gateway failure.
func IsGatewayFailure(err error) bool {
	return errors.Is(err, ErrGatewayFailure)
}
