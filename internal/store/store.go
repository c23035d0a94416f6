// Package store holds the single in-memory organization record sequence.
//
// The store is the only owner of the sequence: consumers read snapshots and
// all mutation goes through ReplaceAll. There is no per-record update or
// delete surface.
package store

import (
	"sync"

	"orgboard-backend/internal/domain"
)

// State is the binary load state of the record sequence.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Store is the injectable state container owned by the composition root.
type Store struct {
	mu      sync.RWMutex
	records []domain.Organization
	state   State
}

func New() *Store {
	return &Store{state: StateLoading}
}

// Get returns a snapshot of the current sequence. Callers may not reach the
// store's own backing array through it.
func (s *Store) Get() []domain.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Organization, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the current record count without copying.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ReplaceAll swaps the whole sequence. The previous records are discarded,
// never patched.
func (s *Store) ReplaceAll(records []domain.Organization) {
	copied := make([]domain.Organization, len(records))
	copy(copied, records)
	s.mu.Lock()
	s.records = copied
	s.mu.Unlock()
}

// MarkReady transitions Loading→Ready. The transition happens once,
// unconditionally after the single load attempt, whether or not any data
// arrived; there is no way back to Loading.
func (s *Store) MarkReady() {
	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()
}

// State returns the current load state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
