package usecase

import (
	"context"

	"eventdeck/internal/modules/plugin/dto"
	pluginin "eventdeck/internal/modules/plugin/port/in"
	"eventdeck/internal/modules/plugin/service"
)

type Interactor struct {
	svc *service.PluginService
}

func NewInteractor(svc *service.PluginService) pluginin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) FetchEvents(ctx context.Context, input dto.FetchInput) (dto.FetchOutput, error) {
	return i.svc.FetchEvents(ctx, input)
}

func (i *Interactor) FetchAll(ctx context.Context, vaultPath string) ([]dto.FetchOutput, error) {
	return i.svc.FetchAll(ctx, vaultPath)
}
