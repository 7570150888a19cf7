package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	catalogout "eventdeck/internal/modules/catalog/adapter/out"
	"eventdeck/internal/modules/catalog/domain"
	"eventdeck/internal/platform/geo"
)

func TestVaultEventStoreRoundTrip(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	store := catalogout.NewVaultEventStore(vault)
	event := domain.Event{
		ID:          "evt-1",
		Name:        "Café Crème Meetup",
		Description: "Pastries and small talk.",
		StartsAt:    time.Date(2026, 5, 9, 10, 30, 0, 0, time.UTC),
		Location: domain.Location{
			Address:     "Wicker Park, Chicago, IL",
			Coordinates: geo.Coordinates{Latitude: 41.9088, Longitude: -87.6796},
		},
		Category:     "food",
		MaxAttendees: 10,
		Price:        5,
		Organizer:    "Pastry Club",
		Source:       domain.SourceUserCreated,
	}
	path, err := store.Save(context.Background(), event)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "2026-05-09-cafe-creme-meetup.md" {
		t.Fatalf("unexpected note name %s", filepath.Base(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.HasPrefix(string(raw), "---\n") || !strings.Contains(string(raw), "# Café Crème Meetup") {
		t.Fatalf("unexpected note content:\n%s", raw)
	}

	events, err := store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	got := events[0]
	if got.ID != event.ID || got.Description != event.Description || !got.StartsAt.Equal(event.StartsAt) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Location.Coordinates != event.Location.Coordinates || got.Source != domain.SourceUserCreated {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestVaultEventStoreEmptyVault(t *testing.T) {
	t.Parallel()
	events, err := catalogout.NewVaultEventStore(t.TempDir()).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestSampleProviderServesChicagoDeck(t *testing.T) {
	t.Parallel()
	events, err := catalogout.NewSampleProvider().Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected three sample events, got %d", len(events))
	}
	names := []string{"Saturday Morning Hike", "Pickup Basketball", "Coffee & Code"}
	for i, e := range events {
		if e.Name != names[i] {
			t.Fatalf("event %d: expected %q, got %q", i, names[i], e.Name)
		}
		if err := e.Validate(); err != nil {
			t.Fatalf("sample event %s invalid: %v", e.ID, err)
		}
	}
	if _, err := domain.NewCatalog(events); err != nil {
		t.Fatalf("sample events must form a catalog: %v", err)
	}
}
