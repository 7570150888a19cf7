package out

import (
	"context"
	"sync"

	"eventdeck/internal/modules/auth/domain"
	authout "eventdeck/internal/modules/auth/port/out"
	apperrors "eventdeck/internal/platform/errors"
)

// MemorySignInStore forgets the sign-in when the process exits.
type MemorySignInStore struct {
	mu      sync.Mutex
	account *domain.Account
}

func NewMemorySignInStore() authout.SignInStore {
	return &MemorySignInStore{}
}

func (s *MemorySignInStore) Save(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &account
	return nil
}

func (s *MemorySignInStore) Load(_ context.Context) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return domain.Account{}, apperrors.ErrNotAuthenticated
	}
	return *s.account, nil
}

func (s *MemorySignInStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	return nil
}
