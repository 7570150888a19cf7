package in

import (
	"context"

	"eventdeck/internal/modules/deck/dto"
	deckin "eventdeck/internal/modules/deck/port/in"
)

// TUIHandler exposes the deck with the typed swipe input the discover view
// builds from key presses.
type TUIHandler struct {
	usecase deckin.Usecase
}

func NewTUIHandler(usecase deckin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Enter(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Enter(ctx)
}

func (h TUIHandler) Swipe(ctx context.Context, input dto.SwipeInput) (dto.SwipeOutput, error) {
	return h.usecase.Swipe(ctx, input)
}

func (h TUIHandler) Undo(ctx context.Context) (dto.UndoOutput, error) {
	return h.usecase.Undo(ctx)
}

func (h TUIHandler) Leave(ctx context.Context, input dto.LeaveInput) error {
	return h.usecase.Leave(ctx, input)
}

func (h TUIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
