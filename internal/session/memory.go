package session

import (
	"net/http"
	"sync"
)

// MemoryStore is an in-memory Persistence used in tests.
type MemoryStore struct {
	mu    sync.Mutex
	s     Session
	saved bool
}

var _ Persistence = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(*http.Request) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return New()
	}
	return m.s
}

func (m *MemoryStore) Save(_ http.ResponseWriter, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	m.saved = true
	return nil
}

func (m *MemoryStore) Clear(http.ResponseWriter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	m.saved = false
}
