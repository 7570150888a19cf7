package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eventdeck/internal/modules/profile/domain"
	profileout "eventdeck/internal/modules/profile/port/out"
)

const ProfileFile = "profile.yaml"

// YAMLProfileStore keeps the profile as a hand-editable file in the vault.
type YAMLProfileStore struct {
	path string
}

func NewYAMLProfileStore(vaultPath string) profileout.Store {
	return &YAMLProfileStore{path: filepath.Join(vaultPath, ProfileFile)}
}

func (s *YAMLProfileStore) Load(_ context.Context) (domain.Profile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Default(), nil
		}
		return domain.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	profile := domain.Profile{}
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %s: %w", s.path, err)
	}
	if err := profile.Validate(); err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s: %w", s.path, err)
	}
	return profile, nil
}

func (s *YAMLProfileStore) Save(_ context.Context, profile domain.Profile) error {
	raw, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
