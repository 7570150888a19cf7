package usecase

import (
	"context"
	"errors"

	"eventdeck/internal/modules/location/dto"
	locationin "eventdeck/internal/modules/location/port/in"
	"eventdeck/internal/modules/location/service"
	apperrors "eventdeck/internal/platform/errors"
)

type Interactor struct {
	svc *service.LocationService
}

func NewInteractor(svc *service.LocationService) locationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Locate(ctx context.Context) (dto.LocationOutput, error) {
	fix, err := i.svc.Locate(ctx)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, service.ErrPermissionDenied) {
			reason = service.ErrPermissionDenied.Error()
		} else if !errors.Is(err, apperrors.ErrLocationUnavailable) {
			reason = apperrors.ErrLocationUnavailable.Error() + ": " + reason
		}
		return dto.LocationOutput{Available: false, Reason: reason}, nil
	}
	return dto.LocationOutput{
		Available: true,
		Latitude:  fix.Coordinates.Latitude,
		Longitude: fix.Coordinates.Longitude,
		Label:     fix.DisplayLabel(),
		Source:    fix.Source,
		At:        fix.At,
	}, nil
}
