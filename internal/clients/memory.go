package clients

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the zero-dependency Store used when no database path
// is configured, and by tests.
type MemoryStore struct {
	mu      sync.Mutex
	clients []*Client
	plans   []*TrainingPlan
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, client *Client) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *client
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	s.clients = append(s.clients, &c)
	return &c, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

func (s *MemoryStore) GetByName(_ context.Context, name string) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexByName(name); i >= 0 {
		return s.clients[i], nil
	}
	return nil, nil
}

func (s *MemoryStore) DeleteByName(_ context.Context, name string) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByName(name)
	if i < 0 {
		return nil, nil
	}
	deleted := s.clients[i]
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return deleted, nil
}

// indexByName does the same case-insensitive substring match the
// SQLite store does. Caller holds the lock.
func (s *MemoryStore) indexByName(name string) int {
	needle := strings.ToLower(name)
	for i, c := range s.clients {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) SavePlan(_ context.Context, plan *TrainingPlan) (*TrainingPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *plan
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.plans = append(s.plans, &p)
	return &p, nil
}

func (s *MemoryStore) ListPlans(_ context.Context) ([]*TrainingPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*TrainingPlan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}
