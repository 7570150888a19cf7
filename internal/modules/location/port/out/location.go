package out

import (
	"context"

	"eventdeck/internal/modules/location/domain"
)

type Locator interface {
	Locate(ctx context.Context) (domain.Fix, error)
}
