package out

import (
	"context"
	"fmt"

	"eventdeck/internal/modules/location/domain"
	locationout "eventdeck/internal/modules/location/port/out"
	"eventdeck/internal/platform/geo"
)

// StaticLocator reports a fixed, configured position.
type StaticLocator struct {
	fix domain.Fix
}

func NewStaticLocator(coords geo.Coordinates, label string) locationout.Locator {
	return &StaticLocator{fix: domain.Fix{Coordinates: coords, Label: label, Source: "config"}}
}

func (l *StaticLocator) Locate(context.Context) (domain.Fix, error) {
	if err := l.fix.Validate(); err != nil {
		return domain.Fix{}, fmt.Errorf("configured location: %w", err)
	}
	return l.fix, nil
}
