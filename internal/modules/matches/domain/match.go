package domain

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed:
		return nil
	default:
		return fmt.Errorf("unsupported match status %q", string(s))
	}
}

// Match records interest in one event. EventID is the identity; a second
// interest in the same event refers to the same Match.
type Match struct {
	ID          string
	EventID     string
	Status      Status
	MatchedAt   time.Time
	ConfirmedAt time.Time
}

func New(id, eventID string, at time.Time) (Match, error) {
	m := Match{ID: id, EventID: strings.TrimSpace(eventID), Status: StatusPending, MatchedAt: at}
	if err := m.Validate(); err != nil {
		return Match{}, err
	}
	return m, nil
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.EventID) == "" {
		return fmt.Errorf("match event id is required")
	}
	if m.MatchedAt.IsZero() {
		return fmt.Errorf("match time is required")
	}
	return m.Status.Validate()
}

// Confirm is idempotent; the first confirmation time is kept.
func (m Match) Confirm(at time.Time) Match {
	if m.Status == StatusConfirmed {
		return m
	}
	m.Status = StatusConfirmed
	m.ConfirmedAt = at
	return m
}
