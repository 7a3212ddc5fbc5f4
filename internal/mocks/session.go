package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/pig-api/internal/store"
)

// Session operation names as recorded in Calls.
const (
	OpResolveAPIKey = "ResolveAPIKey"
	OpPeopleGet     = "PeopleGet"
	OpPersonGet     = "PersonGet"
	OpPersonUpdate  = "PersonUpdate"
	OpThingsGet     = "ThingsGet"
	OpThingGet      = "ThingGet"
	OpThingAdd      = "ThingAdd"
	OpThingUpdate   = "ThingUpdate"
	OpThingDelete   = "ThingDelete"
)

// SessionCall is one recorded call on a MockSession.
type SessionCall struct {
	Op   string
	Args []any
}

// MockSession implements store.Session for testing.
//
// Without function overrides, ResolveAPIKey resolves Keys and every business
// operation returns Result and Err.
type MockSession struct {
	ResolveAPIKeyFn func(ctx context.Context, key string) (int, bool, error)
	PeopleGetFn     func(ctx context.Context) (store.Result, error)
	PersonGetFn     func(ctx context.Context, personID int) (store.Result, error)
	PersonUpdateFn  func(ctx context.Context, personID int, name string) (store.Result, error)
	ThingsGetFn     func(ctx context.Context, personID int) (store.Result, error)
	ThingGetFn      func(ctx context.Context, personID, thingID int) (store.Result, error)
	ThingAddFn      func(ctx context.Context, personID int, name string) (store.Result, error)
	ThingUpdateFn   func(ctx context.Context, personID, thingID int, name string) (store.Result, error)
	ThingDeleteFn   func(ctx context.Context, personID, thingID int) (store.Result, error)

	// Default response values
	Keys   map[string]int
	Result store.Result
	Err    error

	mu       sync.Mutex
	calls    []SessionCall
	released int
}

// NewMockSession returns a session resolving keys and answering every
// business call with result.
func NewMockSession(keys map[string]int, result store.Result) *MockSession {
	return &MockSession{Keys: keys, Result: result}
}

func (m *MockSession) record(op string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, SessionCall{Op: op, Args: args})
}

// Calls returns a copy of every recorded call, in order. Release is not recorded.
func (m *MockSession) Calls() []SessionCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SessionCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times op was called.
func (m *MockSession) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ReleaseCount returns how many times Release was called.
func (m *MockSession) ReleaseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.released
}

// ResolveAPIKey implements store.Session.
func (m *MockSession) ResolveAPIKey(ctx context.Context, key string) (int, bool, error) {
	m.record(OpResolveAPIKey, key)
	if m.ResolveAPIKeyFn != nil {
		return m.ResolveAPIKeyFn(ctx, key)
	}
	if m.Err != nil {
		return 0, false, m.Err
	}
	personID, ok := m.Keys[key]
	return personID, ok, nil
}

// PeopleGet implements store.Session.
func (m *MockSession) PeopleGet(ctx context.Context) (store.Result, error) {
	m.record(OpPeopleGet)
	if m.PeopleGetFn != nil {
		return m.PeopleGetFn(ctx)
	}
	return m.Result, m.Err
}

// PersonGet implements store.Session.
func (m *MockSession) PersonGet(ctx context.Context, personID int) (store.Result, error) {
	m.record(OpPersonGet, personID)
	if m.PersonGetFn != nil {
		return m.PersonGetFn(ctx, personID)
	}
	return m.Result, m.Err
}

// PersonUpdate implements store.Session.
func (m *MockSession) PersonUpdate(ctx context.Context, personID int, name string) (store.Result, error) {
	m.record(OpPersonUpdate, personID, name)
	if m.PersonUpdateFn != nil {
		return m.PersonUpdateFn(ctx, personID, name)
	}
	return m.Result, m.Err
}

// ThingsGet implements store.Session.
func (m *MockSession) ThingsGet(ctx context.Context, personID int) (store.Result, error) {
	m.record(OpThingsGet, personID)
	if m.ThingsGetFn != nil {
		return m.ThingsGetFn(ctx, personID)
	}
	return m.Result, m.Err
}

// ThingGet implements store.Session.
func (m *MockSession) ThingGet(ctx context.Context, personID, thingID int) (store.Result, error) {
	m.record(OpThingGet, personID, thingID)
	if m.ThingGetFn != nil {
		return m.ThingGetFn(ctx, personID, thingID)
	}
	return m.Result, m.Err
}

// ThingAdd implements store.Session.
func (m *MockSession) ThingAdd(ctx context.Context, personID int, name string) (store.Result, error) {
	m.record(OpThingAdd, personID, name)
	if m.ThingAddFn != nil {
		return m.ThingAddFn(ctx, personID, name)
	}
	return m.Result, m.Err
}

// ThingUpdate implements store.Session.
func (m *MockSession) ThingUpdate(ctx context.Context, personID, thingID int, name string) (store.Result, error) {
	m.record(OpThingUpdate, personID, thingID, name)
	if m.ThingUpdateFn != nil {
		return m.ThingUpdateFn(ctx, personID, thingID, name)
	}
	return m.Result, m.Err
}

// ThingDelete implements store.Session.
func (m *MockSession) ThingDelete(ctx context.Context, personID, thingID int) (store.Result, error) {
	m.record(OpThingDelete, personID, thingID)
	if m.ThingDeleteFn != nil {
		return m.ThingDeleteFn(ctx, personID, thingID)
	}
	return m.Result, m.Err
}

// Release implements store.Session.
func (m *MockSession) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released++
}

var (
	_ store.Gateway = (*MockGateway)(nil)
	_ store.Session = (*MockSession)(nil)
)
