package domain_test

import (
	"testing"
	"time"

	"eventdeck/internal/modules/matches/domain"
)

func TestNewMatchStartsPending(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	m, err := domain.New("m-1", " evt-1 ", at)
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	if m.Status != domain.StatusPending || m.EventID != "evt-1" {
		t.Fatalf("unexpected match: %+v", m)
	}
	if _, err := domain.New("m-2", "", at); err == nil {
		t.Fatalf("expected missing event id error")
	}
	if _, err := domain.New("m-3", "evt", time.Time{}); err == nil {
		t.Fatalf("expected missing time error")
	}
}

func TestConfirmKeepsFirstConfirmation(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	m, _ := domain.New("m-1", "evt-1", at)
	first := m.Confirm(at.Add(time.Hour))
	second := first.Confirm(at.Add(2 * time.Hour))
	if second.Status != domain.StatusConfirmed || !second.ConfirmedAt.Equal(at.Add(time.Hour)) {
		t.Fatalf("unexpected confirmation: %+v", second)
	}
	if m.Status != domain.StatusPending {
		t.Fatalf("confirm must not mutate the receiver")
	}
}

func TestStatusValidate(t *testing.T) {
	t.Parallel()
	if err := domain.Status("maybe").Validate(); err == nil {
		t.Fatalf("expected invalid status error")
	}
}
