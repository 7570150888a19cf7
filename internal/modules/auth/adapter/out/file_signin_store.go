package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eventdeck/internal/modules/auth/domain"
	authout "eventdeck/internal/modules/auth/port/out"
	apperrors "eventdeck/internal/platform/errors"
)

type FileSignInStore struct {
	path string
}

func NewFileSignInStore(dataDir string) authout.SignInStore {
	return &FileSignInStore{path: filepath.Join(dataDir, "signin.json")}
}

func (s *FileSignInStore) Save(_ context.Context, account domain.Account) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create sign-in dir: %w", err)
	}
	payload, err := json.MarshalIndent(account, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sign-in: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write sign-in: %w", err)
	}
	return nil
}

func (s *FileSignInStore) Load(_ context.Context) (domain.Account, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Account{}, apperrors.ErrNotAuthenticated
		}
		return domain.Account{}, fmt.Errorf("read sign-in: %w", err)
	}
	account := domain.Account{}
	if err := json.Unmarshal(payload, &account); err != nil {
		return domain.Account{}, fmt.Errorf("decode sign-in: %w", err)
	}
	if account.Email == "" {
		return domain.Account{}, apperrors.ErrNotAuthenticated
	}
	return account, nil
}

func (s *FileSignInStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear sign-in: %w", err)
	}
	return nil
}
