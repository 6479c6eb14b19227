package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store with a process-local slot. Suitable for tests
// and for embedders that do not want the session to survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	present bool
}

// NewMemoryStore creates an empty in-memory token store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored token
func (m *MemoryStore) Load(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.present {
		return "", ErrTokenNotFound
	}
	return m.token, nil
}

// Save replaces the slot with the given token
func (m *MemoryStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.present = true
	return nil
}

// Delete empties the slot
func (m *MemoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.present = false
	return nil
}
