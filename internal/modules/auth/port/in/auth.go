package in

import (
	"context"

	"eventdeck/internal/modules/auth/domain"
	"eventdeck/internal/modules/auth/dto"
)

// ErrMissingFields is wrapped by Login and Register when the email or
// password is empty.
var ErrMissingFields = domain.ErrMissingFields

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.AccountOutput, error)
	Logout(ctx context.Context) error
	// Current returns apperrors.ErrNotAuthenticated when nobody is signed in.
	Current(ctx context.Context) (dto.AccountOutput, error)
}
