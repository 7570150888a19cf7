package in

import (
	"context"

	"eventdeck/internal/modules/location/dto"
	locationin "eventdeck/internal/modules/location/port/in"
)

type CLIHandler struct {
	usecase locationin.Usecase
}

func NewCLIHandler(usecase locationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Locate(ctx context.Context) (dto.LocationOutput, error) {
	return h.usecase.Locate(ctx)
}
