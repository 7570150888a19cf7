package in

import (
	"context"

	"eventdeck/internal/modules/deck/dto"
	deckin "eventdeck/internal/modules/deck/port/in"
)

type CLIHandler struct {
	usecase deckin.Usecase
}

func NewCLIHandler(usecase deckin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Enter(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Enter(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.CardOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Swipe(ctx context.Context, direction string) (dto.SwipeOutput, error) {
	return h.usecase.Swipe(ctx, dto.SwipeInput{Direction: direction})
}

func (h CLIHandler) Undo(ctx context.Context) (dto.UndoOutput, error) {
	return h.usecase.Undo(ctx)
}

func (h CLIHandler) Leave(ctx context.Context) error {
	return h.usecase.Leave(ctx, dto.LeaveInput{})
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
