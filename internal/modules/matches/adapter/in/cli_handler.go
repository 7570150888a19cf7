package in

import (
	"context"

	"eventdeck/internal/modules/matches/dto"
	matchesin "eventdeck/internal/modules/matches/port/in"
)

type CLIHandler struct {
	usecase matchesin.Usecase
}

func NewCLIHandler(usecase matchesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.MatchOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Confirm(ctx context.Context, eventID string) (dto.MatchOutput, error) {
	return h.usecase.Confirm(ctx, eventID)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
