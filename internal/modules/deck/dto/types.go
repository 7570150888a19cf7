package dto

import "time"

type Card struct {
	ID           string
	Name         string
	Description  string
	StartsAt     time.Time
	Address      string
	Latitude     float64
	Longitude    float64
	Category     string
	Attendees    int
	MaxAttendees int
	Price        float64
	ImageURL     string
	Organizer    string
	Source       string
}

// Directions accepted by SwipeInput. Aliases such as "yes" and "no" are also
// understood.
const (
	DirectionRight  = "right"
	DirectionLeft   = "left"
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionCancel = "cancel"
)

type CardOutput struct {
	Card      Card
	Exhausted bool
	// EmptyTitle and EmptyHint are set once the deck is exhausted.
	EmptyTitle string
	EmptyHint  string
	Position   int
	Total      int
}

type SessionOutput struct {
	SessionID string
	StartedAt time.Time
	Current CardOutput
}

// LeaveInput names the session to discard. An empty SessionID discards
// whichever session is active.
type LeaveInput struct {
	SessionID string
}

type SwipeInput struct {
	Direction string
}

type SwipeOutput struct {
	Gesture  string
	Decisive bool
	Decision string
	EventID  string
	// Emitted is true when an interested outcome reached the sink.
	Emitted bool
	Alert   string
	Next    CardOutput
}

type UndoOutput struct {
	EventID   string
	Decision  string
	Retracted bool
	Current   CardOutput
}

type SummaryOutput struct {
	SessionID  string
	StartedAt  time.Time
	Total      int
	Position   int
	Remaining  int
	Interested int
	Passed     int
	Exhausted  bool
}
