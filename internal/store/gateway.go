package store

import (
	"context"
	"encoding/json"
)

// Status bounds accepted from a stored routine.
const (
	MinStatus = 100
	MaxStatus = 599
)

// Result is the (status, payload) pair returned by every stored routine.
// Status is the routine's judgment of the HTTP status that best describes the
// outcome and is propagated verbatim.
type Result struct {
	Status  int
	Payload json.RawMessage
}

// ValidStatus reports whether status is a syntactically legal HTTP status code.
func ValidStatus(status int) bool {
	return status >= MinStatus && status <= MaxStatus
}

// Gateway hands out store sessions. Each session is exclusive to one inbound
// request and must be released when that request completes.
type Gateway interface {
	Acquire(ctx context.Context) (Session, error)
}

// Session is one exclusive store connection with one method per business
// operation. Arguments are already validated; implementations never see raw
// request data. Errors returned are *GatewayError values wrapping
// ErrGatewayFailure; a well-formed non-2xx Result is not an error.
type Session interface {
	// ResolveAPIKey looks up the person owning key. A missing key is reported
	// as ok == false, not as an error.
	ResolveAPIKey(ctx context.Context, key string) (personID int, ok bool, err error)

	PeopleGet(ctx context.Context) (Result, error)
	PersonGet(ctx context.Context, personID int) (Result, error)
	PersonUpdate(ctx context.Context, personID int, name string) (Result, error)

	ThingsGet(ctx context.Context, personID int) (Result, error)
	ThingGet(ctx context.Context, personID, thingID int) (Result, error)
	ThingAdd(ctx context.Context, personID int, name string) (Result, error)
	ThingUpdate(ctx context.Context, personID, thingID int, name string) (Result, error)
	ThingDelete(ctx context.Context, personID, thingID int) (Result, error)

	// Release returns the underlying connection. It is safe to call more than once.
	Release()
}
