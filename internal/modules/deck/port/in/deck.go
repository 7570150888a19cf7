package in

import (
	"context"

	"eventdeck/internal/modules/deck/dto"
)

// Usecase drives one discover session at a time. Entering starts a fresh
// session and discards any previous one.
type Usecase interface {
	Enter(ctx context.Context) (dto.SessionOutput, error)
	Current(ctx context.Context) (dto.CardOutput, error)
	Swipe(ctx context.Context, input dto.SwipeInput) (dto.SwipeOutput, error)
	Undo(ctx context.Context) (dto.UndoOutput, error)
	// Leave is a no-op when input names a session that is no longer active.
	Leave(ctx context.Context, input dto.LeaveInput) error
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
