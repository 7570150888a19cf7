package out

import (
	"context"
	"sync"

	"eventdeck/internal/modules/matches/domain"
	matchesout "eventdeck/internal/modules/matches/port/out"
)

// MemoryStore keeps matches for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Match
}

func NewMemoryStore() matchesout.Store {
	return &MemoryStore{byID: map[string]domain.Match{}}
}

func (s *MemoryStore) Find(_ context.Context, eventID string) (domain.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[eventID]
	return m, ok, nil
}

func (s *MemoryStore) Insert(_ context.Context, m domain.Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[m.EventID]; ok {
		return false, nil
	}
	s.byID[m.EventID] = m
	s.order = append(s.order, m.EventID)
	return true, nil
}

func (s *MemoryStore) Update(_ context.Context, m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[m.EventID]; !ok {
		return nil
	}
	s.byID[m.EventID] = m
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[eventID]; !ok {
		return false, nil
	}
	delete(s.byID, eventID)
	for i, id := range s.order {
		if id == eventID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Match, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}
