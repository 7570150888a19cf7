package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/auth/domain"
	authout "eventdeck/internal/modules/auth/port/out"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/id"
	"eventdeck/internal/platform/logging"
)

// AuthService is a local stand-in for an identity provider: any complete
// email and password pair signs in.
type AuthService struct {
	store authout.SignInStore
	clock clock.Clock
	idGen id.Generator
	log   hclog.Logger
}

func NewAuthService(store authout.SignInStore, clock clock.Clock, idGen id.Generator, log hclog.Logger) *AuthService {
	return &AuthService{store: store, clock: clock, idGen: idGen, log: logging.OrNull(log).Named("auth")}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Account, error) {
	if err := creds.Validate(); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	email := domain.NormalizeEmail(creds.Email)
	account := domain.Account{ID: s.idGen.New(), Email: email}
	if previous, err := s.store.Load(ctx); err == nil && previous.Email == email {
		account.ID = previous.ID
		account.Name = previous.Name
	} else if err != nil && !errors.Is(err, apperrors.ErrNotAuthenticated) {
		return domain.Account{}, err
	}
	account.SignedInAt = s.clock.Now()
	if err := s.store.Save(ctx, account); err != nil {
		return domain.Account{}, err
	}
	s.log.Info("signed in", "account_id", account.ID)
	return account, nil
}

func (s *AuthService) Register(ctx context.Context, name string, creds domain.Credentials) (domain.Account, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Account{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, domain.ErrMissingFields)
	}
	if err := creds.Validate(); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	account := domain.Account{
		ID:         s.idGen.New(),
		Name:       strings.TrimSpace(name),
		Email:      domain.NormalizeEmail(creds.Email),
		SignedInAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, account); err != nil {
		return domain.Account{}, err
	}
	s.log.Info("registered", "account_id", account.ID)
	return account, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("signed out")
	return nil
}

func (s *AuthService) Current(ctx context.Context) (domain.Account, error) {
	return s.store.Load(ctx)
}
