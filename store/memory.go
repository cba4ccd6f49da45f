package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store used in tests and ephemeral sessions.
// The zero value is ready to use.
type Memory struct {
	mu       sync.RWMutex
	hasToken bool
	token    string
	identity *Identity
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save stores the token and identity projection, replacing any prior session.
func (m *Memory) Save(_ context.Context, token string, identity Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.hasToken = true
	id := identity
	m.identity = &id
	return nil
}

// LoadToken returns the stored token, reporting absence when no session was
// saved.
func (m *Memory) LoadToken(context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasToken {
		return "", false, nil
	}
	return m.token, true, nil
}

// LoadIdentity returns the stored identity projection.
func (m *Memory) LoadIdentity(context.Context) (Identity, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == nil {
		return Identity{}, false, nil
	}
	return *m.identity, true, nil
}

// Clear removes both keys. Calling it on an empty store is a no-op.
func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.hasToken = false
	m.identity = nil
	return nil
}
