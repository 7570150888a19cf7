package domain

import (
	"fmt"
	"time"

	"eventdeck/internal/platform/geo"
)

// Fix is one resolved position of the user.
type Fix struct {
	Coordinates geo.Coordinates
	Label       string
	Source      string
	At          time.Time
}

func (f Fix) Validate() error {
	if f.Coordinates.IsZero() {
		return fmt.Errorf("fix has no coordinates")
	}
	return f.Coordinates.Validate()
}

// DisplayLabel prefers the place name, falling back to raw coordinates.
func (f Fix) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return fmt.Sprintf("%.4f, %.4f", f.Coordinates.Latitude, f.Coordinates.Longitude)
}
