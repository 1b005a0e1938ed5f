// Package session keeps the in-progress field state of every intake
// conversation.  State lives only for the duration of an incomplete intake:
// it is created lazily on the first message for an unknown session id and
// destroyed the moment the registration is complete.
package session

import (
	"sync"

	"intake-chatbot/pkg"
)

// Registry is a concurrent map from session id to accumulated fields.  The
// whole read-merge-check-delete sequence of a turn runs atomically under the
// registry lock, so two concurrent turns for the same id can never interleave
// a merge with a complete-and-delete, and a deleted session cannot be
// resurrected with stale state.  Collaborator calls are the caller's business
// and must happen outside Apply.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]pkg.Fields
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]pkg.Fields)}
}

// Apply merges partial into the session identified by id, creating the
// session if it does not exist yet.  When the merge leaves all required
// fields known, the session is removed from the registry and done is true.
// The returned snapshot is an independent copy the caller may read without
// holding any lock; missing lists the still-unknown fields in canonical
// order (nil when done).
func (r *Registry) Apply(id string, partial pkg.Fields) (snapshot pkg.Fields, missing []pkg.Field, done bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[id]
	if !ok {
		state = make(pkg.Fields)
		r.sessions[id] = state
	}
	state.Merge(partial)

	missing = state.Missing()
	if len(missing) == 0 {
		delete(r.sessions, id)
		return state.Clone(), nil, true
	}
	return state.Clone(), missing, false
}

// Snapshot returns a copy of the session's current fields, or ok == false if
// no intake is in progress for id.
func (r *Registry) Snapshot(id string) (pkg.Fields, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return state.Clone(), true
}

// Len reports how many intakes are currently in progress.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
