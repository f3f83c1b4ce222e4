package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending actions in a mutex-guarded map. Distinct
// sessions are independent; the single lock is enough because each
// operation is a short map access and contention is per-message.
type MemoryStore struct {
	mu      sync.Mutex
	actions map[string]*PendingAction
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store. A non-positive ttl falls
// back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(ttl, time.Now)
}

// NewMemoryStoreWithClock injects the clock used for stamping and
// expiry checks, so tests can fast-forward time instead of sleeping.
func NewMemoryStoreWithClock(ttl time.Duration, now func() time.Time) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		actions: make(map[string]*PendingAction),
		ttl:     ttl,
		now:     now,
	}
}

// Stage overwrites the session's slot with the given action.
func (s *MemoryStore) Stage(_ context.Context, sessionID string, action *PendingAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	action.CreatedAt = now
	action.ExpiresAt = now.Add(s.ttl)
	s.actions[sessionID] = action
	return nil
}

// Peek returns the session's pending action, or nil if absent or
// expired. Expired entries are deleted on the way out.
func (s *MemoryStore) Peek(_ context.Context, sessionID string) (*PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.actions[sessionID]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(action.ExpiresAt) {
		delete(s.actions, sessionID)
		return nil, nil
	}
	return action, nil
}

// Clear removes the session's slot.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.actions, sessionID)
	return nil
}

// Sweep evicts every expired entry. Expiry is already enforced lazily
// by Peek; running this periodically is memory hygiene only.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, action := range s.actions {
		if !now.Before(action.ExpiresAt) {
			delete(s.actions, id)
			evicted++
		}
	}
	return evicted
}
