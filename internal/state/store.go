package state

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store coordinates concurrent access to the snapshot. The zero value holds an
// empty snapshot and discards logs.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	logger   *zap.Logger
}

// NewStore returns a store seeded with initial.
func NewStore(initial Snapshot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{snapshot: initial.clone(), logger: logger}
}

// Dispatch reduces a into the stored snapshot and returns a copy of the
// result along with whether the action was applied.
func (s *Store) Dispatch(a Action) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := Reduce(s.snapshot, a)
	if !changed {
		s.log().Debug("action ignored",
			zap.String("action", actionName(a)),
			zap.Uint64("seq", s.snapshot.Seq))
		return s.snapshot.clone(), false
	}
	s.snapshot = next
	return next.clone(), true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.clone()
}

func (s *Store) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

func actionName(a Action) string {
	return fmt.Sprintf("%T", a)
}
