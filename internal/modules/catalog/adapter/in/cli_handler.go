package in

import (
	"context"

	"eventdeck/internal/modules/catalog/dto"
	catalogin "eventdeck/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) ListEvents(ctx context.Context) ([]dto.EventOutput, error) {
	return h.usecase.ListEvents(ctx)
}

func (h CLIHandler) GetEvent(ctx context.Context, id string) (dto.EventOutput, error) {
	return h.usecase.GetEvent(ctx, id)
}

func (h CLIHandler) CreateEvent(ctx context.Context, input dto.CreateEventInput) (dto.CreateEventOutput, error) {
	return h.usecase.CreateEvent(ctx, input)
}

func (h CLIHandler) ImportFlyer(ctx context.Context, path string) (dto.CreateEventOutput, error) {
	return h.usecase.ImportFlyer(ctx, dto.ImportFlyerInput{Path: path})
}
