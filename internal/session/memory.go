package session

import (
	"context"
	"sync"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// MemoryStore is an in-process Store. Used in tests and as a fallback when no
// Redis session backend is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	current *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Current(context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, domain.ErrNotAuthenticated
	}
	copy := *m.current
	return &copy, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *s
	m.current = &copy
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}
