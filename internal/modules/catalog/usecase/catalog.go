package usecase

import (
	"context"

	"eventdeck/internal/modules/catalog/domain"
	"eventdeck/internal/modules/catalog/dto"
	catalogin "eventdeck/internal/modules/catalog/port/in"
	"eventdeck/internal/modules/catalog/service"
	"eventdeck/internal/platform/geo"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) *Interactor {
	return &Interactor{svc: svc}
}

var (
	_ catalogin.Usecase       = (*Interactor)(nil)
	_ catalogin.CatalogSource = (*Interactor)(nil)
)

func (i *Interactor) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, _, err := i.svc.Load(ctx)
	return catalog, err
}

func (i *Interactor) Load(ctx context.Context) (dto.LoadOutput, error) {
	catalog, skipped, err := i.svc.Load(ctx)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	return dto.LoadOutput{Events: toOutputs(catalog.Items()), Skipped: skipped}, nil
}

func (i *Interactor) ListEvents(ctx context.Context) ([]dto.EventOutput, error) {
	out, err := i.Load(ctx)
	if err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (i *Interactor) GetEvent(ctx context.Context, id string) (dto.EventOutput, error) {
	event, err := i.svc.GetEvent(ctx, id)
	if err != nil {
		return dto.EventOutput{}, err
	}
	return ToOutput(event), nil
}

func (i *Interactor) CreateEvent(ctx context.Context, input dto.CreateEventInput) (dto.CreateEventOutput, error) {
	event, path, err := i.svc.Create(ctx, domain.Event{
		Name:        input.Name,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		Location: domain.Location{
			Address:     input.Address,
			Coordinates: geo.Coordinates{Latitude: input.Latitude, Longitude: input.Longitude},
		},
		Category:     input.Category,
		MaxAttendees: input.MaxAttendees,
		Price:        input.Price,
		Organizer:    input.Organizer,
	})
	if err != nil {
		return dto.CreateEventOutput{}, err
	}
	return dto.CreateEventOutput{Event: ToOutput(event), NotePath: path}, nil
}

func (i *Interactor) ImportFlyer(ctx context.Context, input dto.ImportFlyerInput) (dto.CreateEventOutput, error) {
	event, path, err := i.svc.ImportFlyer(ctx, input.Path)
	if err != nil {
		return dto.CreateEventOutput{}, err
	}
	return dto.CreateEventOutput{Event: ToOutput(event), NotePath: path}, nil
}

// ToOutput flattens an event for callers outside the catalog module.
func ToOutput(e domain.Event) dto.EventOutput {
	return dto.EventOutput{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		StartsAt:     e.StartsAt,
		Address:      e.Location.Address,
		Latitude:     e.Location.Coordinates.Latitude,
		Longitude:    e.Location.Coordinates.Longitude,
		Category:     e.Category,
		Attendees:    e.Attendees,
		MaxAttendees: e.MaxAttendees,
		Price:        e.Price,
		ImageURL:     e.ImageURL,
		Organizer:    e.Organizer,
		Source:       string(e.Source),
	}
}

func toOutputs(events []domain.Event) []dto.EventOutput {
	out := make([]dto.EventOutput, 0, len(events))
	for _, e := range events {
		out = append(out, ToOutput(e))
	}
	return out
}
