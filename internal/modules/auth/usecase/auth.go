package usecase

import (
	"context"

	"eventdeck/internal/modules/auth/domain"
	"eventdeck/internal/modules/auth/dto"
	authin "eventdeck/internal/modules/auth/port/in"
	"eventdeck/internal/modules/auth/service"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error) {
	account, err := i.svc.Login(ctx, domain.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return dto.AccountOutput{}, err
	}
	return toOutput(account), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.AccountOutput, error) {
	account, err := i.svc.Register(ctx, input.Name, domain.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return dto.AccountOutput{}, err
	}
	return toOutput(account), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.AccountOutput, error) {
	account, err := i.svc.Current(ctx)
	if err != nil {
		return dto.AccountOutput{}, err
	}
	return toOutput(account), nil
}

func toOutput(a domain.Account) dto.AccountOutput {
	return dto.AccountOutput{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		DisplayName: a.DisplayName(),
		SignedInAt:  a.SignedInAt,
	}
}
