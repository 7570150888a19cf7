package domain_test

import (
	"testing"

	"eventdeck/internal/modules/location/domain"
	"eventdeck/internal/platform/geo"
)

func TestFixValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Fix{}).Validate(); err == nil {
		t.Fatalf("expected zero fix to be invalid")
	}
	if err := (domain.Fix{Coordinates: geo.Coordinates{Latitude: 95, Longitude: 10}}).Validate(); err == nil {
		t.Fatalf("expected out of range latitude to be invalid")
	}
	if err := (domain.Fix{Coordinates: geo.Coordinates{Latitude: 41.88, Longitude: -87.63}}).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestDisplayLabel(t *testing.T) {
	t.Parallel()
	fix := domain.Fix{Coordinates: geo.Coordinates{Latitude: 41.87811, Longitude: -87.62980}}
	if got := fix.DisplayLabel(); got != "41.8781, -87.6298" {
		t.Fatalf("unexpected label: %q", got)
	}
	fix.Label = "Chicago, IL"
	if got := fix.DisplayLabel(); got != "Chicago, IL" {
		t.Fatalf("unexpected label: %q", got)
	}
}
