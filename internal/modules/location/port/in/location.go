package in

import (
	"context"

	"eventdeck/internal/modules/location/dto"
)

type Usecase interface {
	// Locate never fails; an unavailable position is reported in the output.
	Locate(ctx context.Context) (dto.LocationOutput, error)
}
