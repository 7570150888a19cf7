package usecase

import (
	"context"
	"errors"

	"eventdeck/internal/modules/matches/domain"
	"eventdeck/internal/modules/matches/dto"
	matchesin "eventdeck/internal/modules/matches/port/in"
	matchesout "eventdeck/internal/modules/matches/port/out"
	"eventdeck/internal/modules/matches/service"
	apperrors "eventdeck/internal/platform/errors"
)

type Interactor struct {
	svc    *service.MatchService
	events matchesout.EventDirectory
}

// NewInteractor resolves event details through events; a nil directory
// leaves matches unresolved.
func NewInteractor(svc *service.MatchService, events matchesout.EventDirectory) matchesin.Usecase {
	return &Interactor{svc: svc, events: events}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error) {
	m, created, err := i.svc.Record(ctx, input.EventID, input.DecidedAt)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	out, err := i.toOutput(ctx, m)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{Match: out, Created: created}, nil
}

func (i *Interactor) Retract(ctx context.Context, eventID string) (bool, error) {
	return i.svc.Retract(ctx, eventID)
}

func (i *Interactor) List(ctx context.Context) ([]dto.MatchOutput, error) {
	matches, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MatchOutput, 0, len(matches))
	for _, m := range matches {
		item, err := i.toOutput(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (i *Interactor) Confirm(ctx context.Context, eventID string) (dto.MatchOutput, error) {
	m, err := i.svc.Confirm(ctx, eventID)
	if err != nil {
		return dto.MatchOutput{}, err
	}
	return i.toOutput(ctx, m)
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	matches, err := i.svc.List(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	stats := dto.StatsOutput{Total: len(matches)}
	for _, m := range matches {
		if m.Status == domain.StatusConfirmed {
			stats.Confirmed++
		} else {
			stats.Pending++
		}
	}
	return stats, nil
}

func (i *Interactor) toOutput(ctx context.Context, m domain.Match) (dto.MatchOutput, error) {
	out := dto.MatchOutput{
		ID:        m.ID,
		EventID:   m.EventID,
		Status:    string(m.Status),
		MatchedAt: m.MatchedAt,
	}
	if i.events == nil {
		return out, nil
	}
	event, err := i.events.GetEvent(ctx, m.EventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return out, nil
		}
		return dto.MatchOutput{}, err
	}
	out.EventName = event.Name
	out.StartsAt = event.StartsAt
	out.Address = event.Address
	out.Category = event.Category
	out.OthersInterested = event.Attendees
	out.Resolved = true
	return out, nil
}
