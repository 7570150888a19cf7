package usecase

import (
	"context"
	"fmt"

	"eventdeck/internal/modules/deck/domain"
	"eventdeck/internal/modules/deck/dto"
	deckin "eventdeck/internal/modules/deck/port/in"
	"eventdeck/internal/modules/deck/service"
	apperrors "eventdeck/internal/platform/errors"
)

type Interactor struct {
	svc *service.DeckService
}

func NewInteractor(svc *service.DeckService) deckin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Enter(ctx context.Context) (dto.SessionOutput, error) {
	snap, err := i.svc.Enter(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{SessionID: snap.SessionID, StartedAt: snap.StartedAt, Current: toCardOutput(snap)}, nil
}

func (i *Interactor) Current(ctx context.Context) (dto.CardOutput, error) {
	snap, err := i.svc.Current(ctx)
	if err != nil {
		return dto.CardOutput{}, err
	}
	return toCardOutput(snap), nil
}

func (i *Interactor) Swipe(ctx context.Context, input dto.SwipeInput) (dto.SwipeOutput, error) {
	g, err := domain.ParseGesture(input.Direction)
	if err != nil {
		return dto.SwipeOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	res, err := i.svc.Swipe(ctx, g)
	if err != nil {
		return dto.SwipeOutput{}, err
	}
	out := dto.SwipeOutput{
		Gesture:  string(res.Gesture),
		Decisive: res.Decisive,
		Decision: string(res.Outcome.Decision),
		EventID:  res.Outcome.EventID,
		Emitted:  res.Emitted,
		Next:     toCardOutput(res.Next),
	}
	if res.Outcome.Decision == domain.DecisionInterested {
		out.Alert = domain.InterestedAlert(res.EventName)
	}
	return out, nil
}

func (i *Interactor) Undo(ctx context.Context) (dto.UndoOutput, error) {
	res, err := i.svc.Undo(ctx)
	if err != nil {
		return dto.UndoOutput{}, err
	}
	return dto.UndoOutput{
		EventID:   res.Outcome.EventID,
		Decision:  string(res.Outcome.Decision),
		Retracted: res.Retracted,
		Current:   toCardOutput(res.Current),
	}, nil
}

func (i *Interactor) Leave(ctx context.Context, input dto.LeaveInput) error {
	return i.svc.Leave(ctx, input.SessionID)
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	snap, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		SessionID:  snap.SessionID,
		StartedAt:  snap.StartedAt,
		Total:      snap.Total,
		Position:   snap.Position,
		Remaining:  snap.Remaining,
		Interested: snap.Interested,
		Passed:     snap.Passed,
		Exhausted:  snap.Phase == domain.PhaseExhausted,
	}, nil
}

func toCardOutput(snap service.Snapshot) dto.CardOutput {
	out := dto.CardOutput{
		Exhausted: !snap.HasEvent,
		Position:  snap.Position,
		Total:     snap.Total,
	}
	if !snap.HasEvent {
		out.EmptyTitle = domain.ExhaustedTitle
		out.EmptyHint = domain.ExhaustedHint
		return out
	}
	e := snap.Event
	out.Card = dto.Card{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		StartsAt:     e.StartsAt,
		Address:      e.Location.Address,
		Latitude:     e.Location.Coordinates.Latitude,
		Longitude:    e.Location.Coordinates.Longitude,
		Category:     e.Category,
		Attendees:    e.Attendees,
		MaxAttendees: e.MaxAttendees,
		Price:        e.Price,
		ImageURL:     e.ImageURL,
		Organizer:    e.Organizer,
		Source:       string(e.Source),
	}
	return out
}
