package out

import (
	"context"

	"eventdeck/internal/modules/auth/domain"
)

// SignInStore remembers who is signed in between runs.
type SignInStore interface {
	Save(ctx context.Context, account domain.Account) error
	Load(ctx context.Context) (domain.Account, error)
	Clear(ctx context.Context) error
}
