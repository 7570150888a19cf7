package usecase

import (
	"context"
	"errors"

	authin "eventdeck/internal/modules/auth/port/in"
	locationin "eventdeck/internal/modules/location/port/in"
	matchesin "eventdeck/internal/modules/matches/port/in"
	"eventdeck/internal/modules/profile/domain"
	"eventdeck/internal/modules/profile/dto"
	profilein "eventdeck/internal/modules/profile/port/in"
	"eventdeck/internal/modules/profile/service"
	apperrors "eventdeck/internal/platform/errors"
)

// Sources feeds the parts of the profile view owned by other modules. Any
// of them may be nil.
type Sources struct {
	Accounts authin.Usecase
	Matches  matchesin.Usecase
	Location locationin.Usecase
}

type Interactor struct {
	svc     *service.ProfileService
	sources Sources
}

func NewInteractor(svc *service.ProfileService, sources Sources) profilein.Usecase {
	return &Interactor{svc: svc, sources: sources}
}

func (i *Interactor) Get(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Get(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return i.toOutput(ctx, profile)
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Update(ctx, input)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return i.toOutput(ctx, profile)
}

func (i *Interactor) toOutput(ctx context.Context, profile domain.Profile) (dto.ProfileOutput, error) {
	out := dto.ProfileOutput{
		Name:      profile.Name,
		Age:       profile.Age,
		Location:  profile.Location,
		Bio:       profile.Bio,
		Interests: append([]string(nil), profile.Interests...),
		Stats:     dto.StatsOutput{EventsAttended: profile.EventsAttended},
	}
	if i.sources.Accounts != nil {
		account, err := i.sources.Accounts.Current(ctx)
		switch {
		case err == nil:
			out.Email = account.Email
		case !errors.Is(err, apperrors.ErrNotAuthenticated):
			return dto.ProfileOutput{}, err
		}
	}
	if i.sources.Matches != nil {
		stats, err := i.sources.Matches.Stats(ctx)
		if err != nil {
			return dto.ProfileOutput{}, err
		}
		out.Stats.Matches = stats.Total
		out.Stats.Confirmed = stats.Confirmed
	}
	if i.sources.Location != nil {
		loc, err := i.sources.Location.Locate(ctx)
		if err == nil && loc.Available {
			out.HasPosition = true
			out.Latitude = loc.Latitude
			out.Longitude = loc.Longitude
			if out.Location == "" {
				out.Location = loc.Label
			}
		}
	}
	return out, nil
}
