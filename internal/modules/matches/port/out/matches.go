package out

import (
	"context"

	catalogdto "eventdeck/internal/modules/catalog/dto"
	"eventdeck/internal/modules/matches/domain"
)

// Store persists matches keyed by event id.
type Store interface {
	Find(ctx context.Context, eventID string) (domain.Match, bool, error)
	// Insert adds m unless its event is already matched; it reports whether
	// a row was written.
	Insert(ctx context.Context, m domain.Match) (bool, error)
	Update(ctx context.Context, m domain.Match) error
	Delete(ctx context.Context, eventID string) (bool, error)
	List(ctx context.Context) ([]domain.Match, error)
}

// EventDirectory resolves event details for display.
type EventDirectory interface {
	GetEvent(ctx context.Context, id string) (catalogdto.EventOutput, error)
}
