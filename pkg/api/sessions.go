package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yourusername/bgrules/pkg/rules"
)

// session is one live game plus the dice source its turns draw from. The
// per-session mutex serializes turn plays against state reads.
type session struct {
	mu     sync.Mutex
	game   *rules.Game
	roller rules.Roller
}

// SessionStore holds live games keyed by uuid.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session)}
}

// Create registers a game and returns its session ID.
func (s *SessionStore) Create(game *rules.Game, roller rules.Roller) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{game: game, roller: roller}
	s.mu.Unlock()
	return id
}

func (s *SessionStore) get(id string) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

// Delete removes a session. It reports whether the session existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
