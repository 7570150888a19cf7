package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/matches/domain"
	matchesout "eventdeck/internal/modules/matches/port/out"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/id"
	"eventdeck/internal/platform/logging"
)

type MatchService struct {
	store matchesout.Store
	clock clock.Clock
	idGen id.Generator
	log   hclog.Logger

	// mu serialises find-then-insert so concurrent records of one event
	// cannot both create a match.
	mu sync.Mutex
}

func NewMatchService(store matchesout.Store, clock clock.Clock, idGen id.Generator, log hclog.Logger) *MatchService {
	return &MatchService{store: store, clock: clock, idGen: idGen, log: logging.OrNull(log).Named("matches")}
}

// Record stores interest in eventID. Recording an already matched event
// returns the existing match with created=false.
func (s *MatchService) Record(ctx context.Context, eventID string, at time.Time) (domain.Match, bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return domain.Match{}, false, fmt.Errorf("%w: event id is required", apperrors.ErrInvalidInput)
	}
	if at.IsZero() {
		at = s.clock.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok, err := s.store.Find(ctx, eventID)
	if err != nil {
		return domain.Match{}, false, err
	}
	if ok {
		s.log.Debug("match already recorded", "event_id", eventID)
		return existing, false, nil
	}
	m, err := domain.New(s.idGen.New(), eventID, at)
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	created, err := s.store.Insert(ctx, m)
	if err != nil {
		return domain.Match{}, false, err
	}
	if !created {
		existing, _, err := s.store.Find(ctx, eventID)
		return existing, false, err
	}
	s.log.Info("match recorded", "event_id", eventID, "match_id", m.ID)
	return m, true, nil
}

func (s *MatchService) Retract(ctx context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, err := s.store.Delete(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return false, err
	}
	if removed {
		s.log.Info("match retracted", "event_id", eventID)
	}
	return removed, nil
}

func (s *MatchService) Confirm(ctx context.Context, eventID string) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok, err := s.store.Find(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return domain.Match{}, err
	}
	if !ok {
		return domain.Match{}, fmt.Errorf("%w: no match for event %s", apperrors.ErrNotFound, eventID)
	}
	if m.Status == domain.StatusConfirmed {
		return m, nil
	}
	m = m.Confirm(s.clock.Now())
	if err := s.store.Update(ctx, m); err != nil {
		return domain.Match{}, err
	}
	s.log.Info("match confirmed", "event_id", eventID)
	return m, nil
}

// List returns matches newest first.
func (s *MatchService) List(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchedAt.After(matches[j].MatchedAt)
	})
	return matches, nil
}
