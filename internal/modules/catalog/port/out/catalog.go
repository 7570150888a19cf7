package out

import (
	"context"

	"eventdeck/internal/modules/catalog/domain"
)

// Provider supplies a finite, ordered list of events.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Event, error)
}

type EventStore interface {
	Save(ctx context.Context, event domain.Event) (string, error)
	List(ctx context.Context) ([]domain.Event, error)
}

// FlyerReader extracts the text lines of a flyer document.
type FlyerReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}
