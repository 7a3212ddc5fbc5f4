package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/pig-api/internal/store"
)

// MockGateway implements store.Gateway for testing.
type MockGateway struct {
	AcquireFn func(ctx context.Context) (store.Session, error)

	// Default response values
	Session store.Session
	Err     error

	mu           sync.Mutex
	acquireCalls int
}

// NewMockGateway returns a gateway handing out session on every Acquire.
func NewMockGateway(session store.Session) *MockGateway {
	return &MockGateway{Session: session}
}

// Acquire implements store.Gateway.
func (m *MockGateway) Acquire(ctx context.Context) (store.Session, error) {
	m.mu.Lock()
	m.acquireCalls++
	m.mu.Unlock()

	if m.AcquireFn != nil {
		return m.AcquireFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

// AcquireCalls returns how many times Acquire was called.
func (m *MockGateway) AcquireCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acquireCalls
}
