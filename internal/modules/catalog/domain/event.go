package domain

import (
	"fmt"
	"strings"
	"time"

	"eventdeck/internal/platform/geo"
)

type Source string

const (
	SourceMeetup      Source = "meetup"
	SourceEventbrite  Source = "eventbrite"
	SourceUserCreated Source = "user-created"
	SourceFeed        Source = "feed"
)

const SchemaVersion = 1

func (s Source) Validate() error {
	switch s {
	case SourceMeetup, SourceEventbrite, SourceUserCreated, SourceFeed:
		return nil
	default:
		return fmt.Errorf("unsupported event source %q", string(s))
	}
}

type Location struct {
	Address     string
	Coordinates geo.Coordinates
}

// Event is one reviewable activity in the deck.
type Event struct {
	ID           string
	Name         string
	Description  string
	StartsAt     time.Time
	Location     Location
	Category     string
	Attendees    int
	MaxAttendees int
	Price        float64
	ImageURL     string
	Organizer    string
	Source       Source
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	if err := e.Source.Validate(); err != nil {
		return err
	}
	if e.Attendees < 0 {
		return fmt.Errorf("attendees must be non-negative")
	}
	if e.MaxAttendees < 0 {
		return fmt.Errorf("max attendees must be non-negative")
	}
	if e.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	return e.Location.Coordinates.Validate()
}

// HasCapacityLimit reports whether MaxAttendees bounds the event.
func (e Event) HasCapacityLimit() bool {
	return e.MaxAttendees > 0
}

// Full reports whether a bounded event has reached capacity.
func (e Event) Full() bool {
	return e.HasCapacityLimit() && e.Attendees >= e.MaxAttendees
}

// Catalog is the ordered, read-only sequence of events a deck is built from.
// Identity and position of each event never change once constructed.
type Catalog struct {
	events []Event
	index  map[string]int
}

func NewCatalog(events []Event) (Catalog, error) {
	c := Catalog{
		events: make([]Event, len(events)),
		index:  make(map[string]int, len(events)),
	}
	copy(c.events, events)
	for i, e := range c.events {
		if _, dup := c.index[e.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate event id %q", e.ID)
		}
		c.index[e.ID] = i
	}
	return c, nil
}

func (c Catalog) Len() int {
	return len(c.events)
}

// At returns the event at position i; ok is false outside [0, Len).
func (c Catalog) At(i int) (Event, bool) {
	if i < 0 || i >= len(c.events) {
		return Event{}, false
	}
	return c.events[i], true
}

func (c Catalog) Find(id string) (Event, bool) {
	i, ok := c.index[id]
	if !ok {
		return Event{}, false
	}
	return c.events[i], true
}

// Items returns a copy of the events in catalog order.
func (c Catalog) Items() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}
