package usecase_test

import (
	"context"
	"testing"
	"time"

	locationout "eventdeck/internal/modules/location/adapter/out"
	"eventdeck/internal/modules/location/service"
	"eventdeck/internal/modules/location/usecase"
	"eventdeck/internal/platform/clock"
	"eventdeck/internal/platform/geo"
)

func TestLocateNeverErrors(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	disabled := usecase.NewInteractor(service.NewLocationService(service.Options{Enabled: false}, clock.Fixed(now), nil))
	out, err := disabled.Locate(context.Background())
	if err != nil {
		t.Fatalf("locate must not error: %v", err)
	}
	if out.Available || out.Reason != "location access is disabled" {
		t.Fatalf("unexpected output: %+v", out)
	}

	static := usecase.NewInteractor(service.NewLocationService(
		service.Options{Enabled: true},
		clock.Fixed(now),
		nil,
		locationout.NewStaticLocator(geo.Coordinates{Latitude: 41.8781, Longitude: -87.6298}, "Chicago, IL"),
	))
	out, err = static.Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if !out.Available || out.Label != "Chicago, IL" || out.Source != "config" {
		t.Fatalf("unexpected output: %+v", out)
	}
}
