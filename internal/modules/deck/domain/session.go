package domain

import (
	"fmt"
	"time"

	catalogdomain "eventdeck/internal/modules/catalog/domain"
)

type Phase string

const (
	PhasePresented   Phase = "presented"
	PhaseClassifying Phase = "classifying"
	PhaseExhausted   Phase = "exhausted"
)

const (
	ExhaustedTitle = "No more events"
	ExhaustedHint  = "Check back later for new activities!"
)

func InterestedAlert(eventName string) string {
	return fmt.Sprintf("You're interested in \"%s\"", eventName)
}

// Outcome is a resolved decision on one event.
type Outcome struct {
	EventID  string
	Decision Decision
	At       time.Time
}

// Resolution is a committed outcome as kept in the session history.
// Created is set when recording the outcome added a new sink entry, so undo
// only retracts what this session produced.
type Resolution struct {
	Outcome
	Created bool
}

// Session is the per-visit state of the deck. It is never persisted.
type Session struct {
	ID        string
	StartedAt time.Time

	cursor  Cursor
	phase   Phase
	history []Resolution
	pending *Outcome
}

func NewSession(id string, catalog catalogdomain.Catalog, at time.Time) *Session {
	s := &Session{ID: id, StartedAt: at, cursor: NewCursor(catalog)}
	s.settle()
	return s
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Current() (catalogdomain.Event, bool) { return s.cursor.Current() }

func (s *Session) Position() int { return s.cursor.Position() }

func (s *Session) Len() int { return s.cursor.Len() }

func (s *Session) Remaining() int { return s.cursor.Remaining() }

func (s *Session) Exhausted() bool { return s.cursor.Exhausted() }

// Classify starts resolving g against the current event. A non-decisive
// gesture returns the session to presented with no outcome. A decisive one
// leaves the session classifying until Commit or Cancel. Classifying an
// exhausted session does nothing.
func (s *Session) Classify(g Gesture, at time.Time) (Outcome, bool) {
	if s.phase == PhaseExhausted {
		return Outcome{}, false
	}
	event, ok := s.cursor.Current()
	if !ok {
		s.settle()
		return Outcome{}, false
	}
	s.phase = PhaseClassifying
	decision, decisive := g.Decision()
	if !decisive {
		s.phase = PhasePresented
		return Outcome{}, false
	}
	o := Outcome{EventID: event.ID, Decision: decision, At: at}
	s.pending = &o
	return o, true
}

// Commit records the pending outcome and advances exactly once.
func (s *Session) Commit(created bool) (Outcome, error) {
	if s.phase != PhaseClassifying || s.pending == nil {
		return Outcome{}, fmt.Errorf("no classification in progress")
	}
	o := *s.pending
	s.pending = nil
	s.history = append(s.history, Resolution{Outcome: o, Created: created})
	s.cursor.Advance()
	s.settle()
	return o, nil
}

// Cancel abandons a pending classification without advancing.
func (s *Session) Cancel() {
	s.pending = nil
	s.settle()
}

// LastResolution returns the most recent committed outcome.
func (s *Session) LastResolution() (Resolution, bool) {
	if len(s.history) == 0 {
		return Resolution{}, false
	}
	return s.history[len(s.history)-1], true
}

// Undo reverts the last committed outcome and moves the cursor back to its
// event.
func (s *Session) Undo() (Resolution, bool) {
	if len(s.history) == 0 || s.phase == PhaseClassifying {
		return Resolution{}, false
	}
	r := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.cursor.back()
	s.settle()
	return r, true
}

// Counts reports committed outcomes by decision.
func (s *Session) Counts() (interested, passed int) {
	for _, r := range s.history {
		if r.Decision == DecisionInterested {
			interested++
		} else {
			passed++
		}
	}
	return interested, passed
}

func (s *Session) settle() {
	if s.cursor.Exhausted() {
		s.phase = PhaseExhausted
		return
	}
	s.phase = PhasePresented
}
