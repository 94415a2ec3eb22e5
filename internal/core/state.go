package core

import (
	"sync"

	"github.com/Rorical/RoriPersons/internal/store"
)

// PersonState holds the current snapshot reference for the event-driven core.
// The snapshot itself is immutable; the lock only guards the reference swap.
type PersonState struct {
	mu        sync.RWMutex
	current   *store.State
	lastError error
	version   uint64
}

func NewPersonState(initial *store.State) *PersonState {
	return &PersonState{current: initial}
}

func (ps *PersonState) Current() *store.State {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.current
}

func (ps *PersonState) Version() uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.version
}

func (ps *PersonState) GetLastError() error {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.lastError
}

// Apply runs action against the current snapshot. On success the new snapshot
// replaces the old one unless it holds the same records and visibility; on
// failure the current snapshot is left in place.
func (ps *PersonState) Apply(action store.Action) (*store.State, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	next, err := action.Apply(ps.current)
	if err != nil {
		ps.lastError = err
		return ps.current, err
	}
	ps.lastError = nil
	if next.Equal(ps.current) {
		return ps.current, nil
	}
	ps.current = next
	ps.version++
	return next, nil
}
