package service

import (
	"context"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/profile/domain"
	"eventdeck/internal/modules/profile/dto"
	profileout "eventdeck/internal/modules/profile/port/out"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/logging"
)

type ProfileService struct {
	store profileout.Store
	log   hclog.Logger
}

func NewProfileService(store profileout.Store, log hclog.Logger) *ProfileService {
	return &ProfileService{store: store, log: logging.OrNull(log).Named("profile")}
}

func (s *ProfileService) Get(ctx context.Context) (domain.Profile, error) {
	return s.store.Load(ctx)
}

func (s *ProfileService) Update(ctx context.Context, input dto.UpdateInput) (domain.Profile, error) {
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Age != nil {
		profile.Age = *input.Age
	}
	if input.Location != nil {
		profile.Location = strings.TrimSpace(*input.Location)
	}
	if input.Bio != nil {
		profile.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Interests != nil {
		profile.Interests = domain.NormalizeInterests(input.Interests)
	}
	if err := profile.Validate(); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	s.log.Info("profile updated", "name", profile.Name)
	return profile, nil
}
