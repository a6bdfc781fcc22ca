package tokenstore

import (
	"sync"

	"pos-api/internal/usecase/commands"
)

// MemoryStore is the in-process token registry. Tokens live only as long as
// the process; a multi-instance deployment would put an external keyed store
// behind the same interface.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]commands.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]commands.Session),
	}
}

func (s *MemoryStore) Put(token string, sess commands.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = sess
}

func (s *MemoryStore) Get(token string) (commands.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.tokens[token]
	return sess, ok
}

// Delete removes the token if present and reports whether it did. Idempotent.
func (s *MemoryStore) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; !ok {
		return false
	}
	delete(s.tokens, token)
	return true
}
