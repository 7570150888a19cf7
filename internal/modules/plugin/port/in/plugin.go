package in

import (
	"context"

	"eventdeck/internal/modules/plugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	FetchEvents(ctx context.Context, input dto.FetchInput) (dto.FetchOutput, error)
	// FetchAll queries every enabled catalog plugin. Plugins that fail are
	// reported in the returned error only when none succeeded.
	FetchAll(ctx context.Context, vaultPath string) ([]dto.FetchOutput, error)
}
