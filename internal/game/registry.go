package game

import (
	"math/rand"
	"time"
)

// Registry owns all active sessions, keyed by the user-supplied session id.
// Like Session it is not safe for concurrent use; the action serializer is
// the only place registry methods run.
type Registry struct {
	sessions map[string]*Session
	rng      *rand.Rand
}

// NewRegistry creates an empty registry. rng is shared by all sessions it
// creates; nil falls back to a time-seeded source.
func NewRegistry(rng *rand.Rand) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Registry{sessions: make(map[string]*Session), rng: rng}
}

// Get returns the session for id, or nil.
func (r *Registry) Get(id string) *Session { return r.sessions[id] }

// Join adds playerID to the session named id, creating the session on first
// join. Returns ErrSessionFull when both slots are already taken.
func (r *Registry) Join(id, playerID string) (*Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		s = NewSession(id, r.rng)
		r.sessions[id] = s
	}
	if err := s.AddParticipant(playerID); err != nil {
		return nil, err
	}
	return s, nil
}

// Remove destroys the session named id.
func (r *Registry) Remove(id string) { delete(r.sessions, id) }

// Leave removes playerID from every session they occupy. Sessions left
// empty are destroyed; the others get their turn order recomputed and are
// returned so the caller can broadcast the new state.
func (r *Registry) Leave(playerID string) []*Session {
	var affected []*Session
	for id, s := range r.sessions {
		if !s.RemoveParticipant(playerID) {
			continue
		}
		if s.Empty() {
			delete(r.sessions, id)
			continue
		}
		s.UpdateTurnOrder()
		affected = append(affected, s)
	}
	return affected
}

// Len reports the number of active sessions.
func (r *Registry) Len() int { return len(r.sessions) }

// All returns every active session. Intended for the debug endpoint.
func (r *Registry) All() []*Session {
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}
