package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	catalogdomain "eventdeck/internal/modules/catalog/domain"
	"eventdeck/internal/modules/deck/domain"
	deckout "eventdeck/internal/modules/deck/port/out"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/id"
	"eventdeck/internal/platform/logging"
)

// Snapshot is a consistent read of the active session.
type Snapshot struct {
	SessionID  string
	StartedAt  time.Time
	Phase      domain.Phase
	Event      catalogdomain.Event
	HasEvent   bool
	Position   int
	Total      int
	Remaining  int
	Interested int
	Passed     int
}

type SwipeResult struct {
	Gesture   domain.Gesture
	Decisive  bool
	Outcome   domain.Outcome
	Emitted   bool
	EventName string
	Next      Snapshot
}

type UndoResult struct {
	Outcome   domain.Outcome
	Retracted bool
	Current   Snapshot
}

// DeckService owns the single active session. UI commands run concurrently,
// so every access goes through mu.
type DeckService struct {
	catalog deckout.CatalogLoader
	sink    deckout.OutcomeSink
	clock   clock.Clock
	idGen   id.Generator
	log     hclog.Logger

	mu      sync.Mutex
	session *domain.Session
}

func NewDeckService(catalog deckout.CatalogLoader, sink deckout.OutcomeSink, clock clock.Clock, idGen id.Generator, log hclog.Logger) *DeckService {
	return &DeckService{catalog: catalog, sink: sink, clock: clock, idGen: idGen, log: logging.OrNull(log).Named("deck")}
}

func (s *DeckService) Enter(ctx context.Context) (Snapshot, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load catalog: %w", err)
	}
	session := domain.NewSession(s.idGen.New(), catalog, s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.log.Debug("discarding previous session", "session_id", s.session.ID)
	}
	s.session = session
	s.log.Info("deck session started", "session_id", session.ID, "events", session.Len())
	return snapshot(session), nil
}

func (s *DeckService) Current(_ context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Snapshot{}, apperrors.ErrNoActiveDeck
	}
	return snapshot(s.session), nil
}

// Swipe classifies g against the current card. An interested outcome is
// handed to the sink before the cursor moves; if the sink fails the card
// stays presented and the error is returned.
func (s *DeckService) Swipe(ctx context.Context, g domain.Gesture) (SwipeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return SwipeResult{}, apperrors.ErrNoActiveDeck
	}
	session := s.session
	result := SwipeResult{Gesture: g}
	event, _ := session.Current()

	outcome, decisive := session.Classify(g, s.clock.Now())
	if !decisive {
		result.Next = snapshot(session)
		return result, nil
	}
	created := false
	if outcome.Decision == domain.DecisionInterested && s.sink != nil {
		var err error
		created, err = s.sink.Record(ctx, outcome)
		if err != nil {
			session.Cancel()
			s.log.Error("outcome sink failed", "session_id", session.ID, "event_id", outcome.EventID, "error", err)
			return SwipeResult{}, fmt.Errorf("record outcome: %w", err)
		}
		result.Emitted = true
	}
	if _, err := session.Commit(created); err != nil {
		return SwipeResult{}, err
	}
	s.log.Debug("swipe resolved", "session_id", session.ID, "event_id", outcome.EventID, "decision", outcome.Decision)

	result.Decisive = true
	result.Outcome = outcome
	result.EventName = event.Name
	result.Next = snapshot(session)
	return result, nil
}

// Undo reverts the most recent resolution. A match created by the undone
// swipe is retracted from the sink first; a match that already existed is
// left alone. On failure the session is left untouched.
func (s *DeckService) Undo(ctx context.Context) (UndoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return UndoResult{}, apperrors.ErrNoActiveDeck
	}
	last, ok := s.session.LastResolution()
	if !ok {
		return UndoResult{}, apperrors.ErrNothingToUndo
	}
	retracted := false
	if last.Decision == domain.DecisionInterested && last.Created && s.sink != nil {
		if err := s.sink.Retract(ctx, last.EventID); err != nil {
			return UndoResult{}, fmt.Errorf("retract outcome: %w", err)
		}
		retracted = true
	}
	if _, ok := s.session.Undo(); !ok {
		return UndoResult{}, apperrors.ErrNothingToUndo
	}
	s.log.Debug("swipe undone", "session_id", s.session.ID, "event_id", last.EventID)
	return UndoResult{Outcome: last.Outcome, Retracted: retracted, Current: snapshot(s.session)}, nil
}

// Leave discards the active session. A non-empty sessionID that no longer
// matches the active session is ignored, so a late leave from an earlier
// visit cannot end the current one.
func (s *DeckService) Leave(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil && sessionID != "" && s.session.ID != sessionID {
		s.log.Debug("ignoring leave for stale session", "session_id", sessionID, "active", s.session.ID)
		return nil
	}
	if s.session != nil {
		interested, passed := s.session.Counts()
		s.log.Info("deck session ended", "session_id", s.session.ID, "interested", interested, "passed", passed)
	}
	s.session = nil
	return nil
}

func snapshot(session *domain.Session) Snapshot {
	event, ok := session.Current()
	interested, passed := session.Counts()
	return Snapshot{
		SessionID:  session.ID,
		StartedAt:  session.StartedAt,
		Phase:      session.Phase(),
		Event:      event,
		HasEvent:   ok,
		Position:   session.Position(),
		Total:      session.Len(),
		Remaining:  session.Remaining(),
		Interested: interested,
		Passed:     passed,
	}
}
