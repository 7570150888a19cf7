package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	catalogdto "eventdeck/internal/modules/catalog/dto"
	matchesout "eventdeck/internal/modules/matches/adapter/out"
	"eventdeck/internal/modules/matches/dto"
	"eventdeck/internal/modules/matches/service"
	"eventdeck/internal/modules/matches/usecase"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
)

type fakeDirectory map[string]catalogdto.EventOutput

func (d fakeDirectory) GetEvent(_ context.Context, id string) (catalogdto.EventOutput, error) {
	e, ok := d[id]
	if !ok {
		return catalogdto.EventOutput{}, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, id)
	}
	return e, nil
}

type seqIDs struct{ n int }

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("m-%d", g.n)
}

func TestUsecaseResolvesEventDetails(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 4, 18, 15, 0, 0, 0, time.UTC)
	directory := fakeDirectory{
		"1": {ID: "1", Name: "Saturday Morning Hike", Attendees: 12, Category: "Outdoor"},
	}
	uc := usecase.NewInteractor(service.NewMatchService(matchesout.NewMemoryStore(), clock.Fixed(now), &seqIDs{}, nil), directory)

	rec, err := uc.Record(context.Background(), dto.RecordInput{EventID: "1", DecidedAt: now})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !rec.Created || rec.Match.EventName != "Saturday Morning Hike" || rec.Match.OthersInterested != 12 {
		t.Fatalf("unexpected record output: %+v", rec)
	}
	if _, err := uc.Record(context.Background(), dto.RecordInput{EventID: "gone", DecidedAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("record unknown event: %v", err)
	}

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two matches, got %d", len(list))
	}
	if list[0].EventID != "gone" || list[0].Resolved {
		t.Fatalf("expected newest unresolved match first: %+v", list[0])
	}
	if !list[1].Resolved || list[1].Status != "pending" {
		t.Fatalf("unexpected resolved match: %+v", list[1])
	}

	if _, err := uc.Confirm(context.Background(), "1"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.Confirmed != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
