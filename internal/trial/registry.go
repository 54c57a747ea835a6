package trial

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out per-user sessions. A session is created, seeded, on
// first access and lives until the process exits; there is no eviction and
// no sharing across instances.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Session returns the session for the given user, creating it if needed.
func (r *Registry) Session(userID uuid.UUID) *Session {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.sessions[userID]; ok {
		return s
	}
	s = NewSession()
	r.sessions[userID] = s
	return s
}

// Drop discards a user's session, if any. Used on logout so the next sign-in
// starts from the seeded state.
func (r *Registry) Drop(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
