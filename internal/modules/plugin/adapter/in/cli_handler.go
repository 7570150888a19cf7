package in

import (
	"context"

	"eventdeck/internal/modules/plugin/dto"
	pluginin "eventdeck/internal/modules/plugin/port/in"
)

type CLIHandler struct {
	usecase pluginin.Usecase
}

func NewCLIHandler(usecase pluginin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) FetchEvents(ctx context.Context, input dto.FetchInput) (dto.FetchOutput, error) {
	return h.usecase.FetchEvents(ctx, input)
}
