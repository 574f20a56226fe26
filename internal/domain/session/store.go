package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory session registry. Every mutation bumps the
// session's revision; a response carries the revision it was computed
// at, so the form layer can discard stale recomputation results
// (last write wins on display).
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return sess, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
