package cart

import (
	"sync"

	"SweetOrderAPI/internal/model"
)

// Store persists cart lines per session so a cart survives a reload but is
// never shared across sessions. A server-backed implementation can substitute
// for the in-memory one behind this interface.
type Store interface {
	Load(sessionID string) ([]model.CartLine, error)
	Save(sessionID string, lines []model.CartLine) error
	Clear(sessionID string) error
}

type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]model.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]model.CartLine)}
}

func (s *MemoryStore) Load(sessionID string) ([]model.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := s.carts[sessionID]
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) Save(sessionID string, lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.CartLine, len(lines))
	copy(stored, lines)
	s.carts[sessionID] = stored
	return nil
}

func (s *MemoryStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
