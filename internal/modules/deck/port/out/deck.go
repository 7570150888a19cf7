package out

import (
	"context"

	catalogdomain "eventdeck/internal/modules/catalog/domain"
	"eventdeck/internal/modules/deck/domain"
)

// CatalogLoader supplies the catalog a new session walks.
type CatalogLoader interface {
	Catalog(ctx context.Context) (catalogdomain.Catalog, error)
}

// OutcomeSink receives interested outcomes. Record must be idempotent per
// event id and reports whether it created a new entry.
type OutcomeSink interface {
	Record(ctx context.Context, outcome domain.Outcome) (bool, error)
	Retract(ctx context.Context, eventID string) error
}
