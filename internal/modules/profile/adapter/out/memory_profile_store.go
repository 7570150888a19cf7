package out

import (
	"context"
	"sync"

	"eventdeck/internal/modules/profile/domain"
	profileout "eventdeck/internal/modules/profile/port/out"
)

type MemoryProfileStore struct {
	mu      sync.Mutex
	profile *domain.Profile
}

func NewMemoryProfileStore() profileout.Store {
	return &MemoryProfileStore{}
}

func (s *MemoryProfileStore) Load(context.Context) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return domain.Default(), nil
	}
	p := *s.profile
	p.Interests = append([]string(nil), p.Interests...)
	return p, nil
}

func (s *MemoryProfileStore) Save(_ context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.Interests = append([]string(nil), profile.Interests...)
	s.profile = &profile
	return nil
}
