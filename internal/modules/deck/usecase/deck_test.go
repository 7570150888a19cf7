package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	catalogdomain "eventdeck/internal/modules/catalog/domain"
	deckout "eventdeck/internal/modules/deck/adapter/out"
	"eventdeck/internal/modules/deck/dto"
	"eventdeck/internal/modules/deck/service"
	"eventdeck/internal/modules/deck/usecase"
	matchesout "eventdeck/internal/modules/matches/adapter/out"
	matchesservice "eventdeck/internal/modules/matches/service"
	matchesusecase "eventdeck/internal/modules/matches/usecase"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
)

type staticCatalog []catalogdomain.Event

func (c staticCatalog) Catalog(context.Context) (catalogdomain.Catalog, error) {
	return catalogdomain.NewCatalog(c)
}

type seqIDs struct{ n int }

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func TestDeckFeedsMatches(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	catalog := staticCatalog{
		{ID: "1", Name: "Saturday Morning Hike", Source: catalogdomain.SourceMeetup},
		{ID: "2", Name: "Pickup Basketball", Source: catalogdomain.SourceUserCreated},
		{ID: "3", Name: "Coffee & Code", Source: catalogdomain.SourceMeetup},
	}
	matches := matchesusecase.NewInteractor(matchesservice.NewMatchService(matchesout.NewMemoryStore(), clock.Fixed(now), &seqIDs{}, nil), nil)
	deck := usecase.NewInteractor(service.NewDeckService(catalog, deckout.NewMatchesSink(matches), clock.Fixed(now), &seqIDs{}, nil))
	ctx := context.Background()

	session, err := deck.Enter(ctx)
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if session.Current.Card.Name != "Saturday Morning Hike" || session.Current.Total != 3 {
		t.Fatalf("unexpected first card: %+v", session.Current)
	}

	out, err := deck.Swipe(ctx, dto.SwipeInput{Direction: "right"})
	if err != nil {
		t.Fatalf("swipe right: %v", err)
	}
	if out.Alert != `You're interested in "Saturday Morning Hike"` || !out.Emitted {
		t.Fatalf("unexpected swipe output: %+v", out)
	}
	if _, err := deck.Swipe(ctx, dto.SwipeInput{Direction: "left"}); err != nil {
		t.Fatalf("swipe left: %v", err)
	}
	last, err := deck.Swipe(ctx, dto.SwipeInput{Direction: "right"})
	if err != nil {
		t.Fatalf("swipe right: %v", err)
	}
	if !last.Next.Exhausted {
		t.Fatalf("expected exhausted after three swipes")
	}
	if last.Next.EmptyTitle != "No more events" || last.Next.EmptyHint != "Check back later for new activities!" {
		t.Fatalf("unexpected exhausted notice: %+v", last.Next)
	}

	list, err := matches.List(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	got := map[string]bool{}
	for _, m := range list {
		got[m.EventID] = true
	}
	if len(list) != 2 || !got["1"] || !got["3"] {
		t.Fatalf("expected matches {1,3}, got %+v", list)
	}

	summary, err := deck.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Interested != 2 || summary.Passed != 1 || !summary.Exhausted || summary.Position != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	undo, err := deck.Undo(ctx)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !undo.Retracted || undo.Current.Card.ID != "3" {
		t.Fatalf("unexpected undo: %+v", undo)
	}
	stats, _ := matches.Stats(ctx)
	if stats.Total != 1 {
		t.Fatalf("expected retraction to leave one match, got %+v", stats)
	}

	if _, err := deck.Swipe(ctx, dto.SwipeInput{Direction: "sideways"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := deck.Leave(ctx, dto.LeaveInput{}); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := deck.Summary(ctx); !errors.Is(err, apperrors.ErrNoActiveDeck) {
		t.Fatalf("expected ErrNoActiveDeck, got %v", err)
	}
}

func TestRecordingTwiceKeepsOneMatch(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	catalog := staticCatalog{{ID: "1", Name: "Hike", Source: catalogdomain.SourceMeetup}}
	matches := matchesusecase.NewInteractor(matchesservice.NewMatchService(matchesout.NewMemoryStore(), clock.Fixed(now), &seqIDs{}, nil), nil)
	deck := usecase.NewInteractor(service.NewDeckService(catalog, deckout.NewMatchesSink(matches), clock.Fixed(now), &seqIDs{}, nil))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := deck.Enter(ctx); err != nil {
			t.Fatalf("enter: %v", err)
		}
		if _, err := deck.Swipe(ctx, dto.SwipeInput{Direction: "right"}); err != nil {
			t.Fatalf("swipe: %v", err)
		}
	}
	stats, err := matches.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("expected one match across sessions, got %d", stats.Total)
	}
}
