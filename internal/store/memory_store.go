// Package store holds the process-wide dataset snapshot behind a small
// thread-safe handle.
package store

import (
	"sync"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
)

// MemoryStore keeps the current immutable snapshot in memory. The snapshot
// itself is never mutated; Replace swaps the whole reference, so readers see
// either the old or the new snapshot, never a mix.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *domain.Snapshot
}

// NewMemoryStore constructs an empty MemoryStore; queries fail with the
// unavailable condition until the first Replace.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot returns the current snapshot, or false when no load has succeeded.
func (s *MemoryStore) Snapshot() (*domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}

// Replace swaps in a freshly loaded snapshot. A nil snapshot is ignored so a
// failed reload can never blank out a working dataset.
func (s *MemoryStore) Replace(snap *domain.Snapshot) {
	if snap == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
