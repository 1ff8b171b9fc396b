package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Manager tracks independent game sessions by id. Sessions share nothing,
// so distinct sessions can be driven fully in parallel; the manager lock
// only guards the map itself.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session with the standard formation.
func (m *Manager) Create(now time.Time) *Session {
	session := NewSession(now)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	log.Info().Stringer("session", session.ID).Msg("session created")
	return session
}

// Get looks up a session by id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Remove drops a session. Removing an unknown id is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		log.Info().Stringer("session", id).Msg("session removed")
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
