package in

import (
	"context"

	"eventdeck/internal/modules/catalog/domain"
	"eventdeck/internal/modules/catalog/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.LoadOutput, error)
	ListEvents(ctx context.Context) ([]dto.EventOutput, error)
	GetEvent(ctx context.Context, id string) (dto.EventOutput, error)
	CreateEvent(ctx context.Context, input dto.CreateEventInput) (dto.CreateEventOutput, error)
	ImportFlyer(ctx context.Context, input dto.ImportFlyerInput) (dto.CreateEventOutput, error)
}

// CatalogSource hands a fully loaded catalog to the deck module.
type CatalogSource interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}
