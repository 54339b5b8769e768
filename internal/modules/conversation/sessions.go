// README: In-memory session registry; one isolated conversation state per session.
package conversation

import (
	"sync"

	"github.com/google/uuid"
)

// Session pairs a conversation state with the mutex that serializes its
// turns. One turn is fully resolved before the next is accepted.
type Session struct {
	ID    string
	state *State
	mu    sync.Mutex
}

// Run executes fn against the session state while holding the turn lock.
func (s *Session) Run(fn func(state *State) string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Sessions is a process-local registry of active sessions. States are never
// shared across sessions; only the registry map itself needs locking.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

func (m *Sessions) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[id]
	return s, ok
}

// Create registers a fresh session with a seeded conversation state.
func (m *Sessions) Create() *Session {
	s := &Session{ID: uuid.NewString(), state: NewState()}
	m.mu.Lock()
	m.byID[s.ID] = s
	m.mu.Unlock()
	return s
}
