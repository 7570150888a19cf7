package geo_test

import (
	"math"
	"testing"

	"eventdeck/internal/platform/geo"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()
	lincolnPark := geo.Coordinates{Latitude: 41.9189, Longitude: -87.6359}
	millennium := geo.Coordinates{Latitude: 41.8826, Longitude: -87.6226}
	d := geo.DistanceKm(lincolnPark, millennium)
	if math.Abs(d-4.19) > 0.1 {
		t.Fatalf("unexpected distance %.3f km", d)
	}
	if geo.DistanceKm(millennium, millennium) != 0 {
		t.Fatalf("distance to self must be zero")
	}
}

func TestCoordinatesValidate(t *testing.T) {
	t.Parallel()
	if err := (geo.Coordinates{Latitude: 91}).Validate(); err == nil {
		t.Fatalf("latitude 91 should fail")
	}
	if err := (geo.Coordinates{Longitude: -181}).Validate(); err == nil {
		t.Fatalf("longitude -181 should fail")
	}
	if err := (geo.Coordinates{Latitude: 41.9, Longitude: -87.6}).Validate(); err != nil {
		t.Fatalf("valid coordinates rejected: %v", err)
	}
}
