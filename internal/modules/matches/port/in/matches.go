package in

import (
	"context"

	"eventdeck/internal/modules/matches/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Retract(ctx context.Context, eventID string) (bool, error)
	List(ctx context.Context) ([]dto.MatchOutput, error)
	Confirm(ctx context.Context, eventID string) (dto.MatchOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
}
