package out

import (
	"context"

	"eventdeck/internal/modules/profile/domain"
)

type Store interface {
	// Load returns domain.Default when nothing has been saved yet.
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
