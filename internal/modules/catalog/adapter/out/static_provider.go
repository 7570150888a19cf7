package out

import (
	"context"
	"time"

	"eventdeck/internal/modules/catalog/domain"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	"eventdeck/internal/platform/geo"
)

// StaticProvider serves a compiled-in list of events.
type StaticProvider struct {
	name   string
	events []domain.Event
}

func NewStaticProvider(name string, events []domain.Event) catalogout.Provider {
	return &StaticProvider{name: name, events: events}
}

// NewSampleProvider serves the Chicago sample deck.
func NewSampleProvider() catalogout.Provider {
	return NewStaticProvider("sample", SampleEvents())
}

func (p *StaticProvider) Name() string { return p.name }

func (p *StaticProvider) Fetch(context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, len(p.events))
	copy(out, p.events)
	return out, nil
}

func SampleEvents() []domain.Event {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		chicago = time.FixedZone("CDT", -5*60*60)
	}
	return []domain.Event{
		{
			ID:          "1",
			Name:        "Saturday Morning Hike",
			Description: "Join us for a refreshing hike through the local trails. All skill levels welcome!",
			StartsAt:    time.Date(2025, 7, 5, 8, 0, 0, 0, chicago),
			Location: domain.Location{
				Address:     "Lincoln Park, Chicago, IL",
				Coordinates: geo.Coordinates{Latitude: 41.9189, Longitude: -87.6359},
			},
			Category:     "Outdoor",
			Attendees:    12,
			MaxAttendees: 20,
			Organizer:    "Chicago Hiking Group",
			Source:       domain.SourceMeetup,
		},
		{
			ID:          "2",
			Name:        "Pickup Basketball",
			Description: "Casual basketball game at the local court. Bring your A-game!",
			StartsAt:    time.Date(2025, 7, 3, 18, 0, 0, 0, chicago),
			Location: domain.Location{
				Address:     "Millennium Park, Chicago, IL",
				Coordinates: geo.Coordinates{Latitude: 41.8826, Longitude: -87.6226},
			},
			Category:     "Sports",
			Attendees:    8,
			MaxAttendees: 12,
			Organizer:    "Chicago Ballers",
			Source:       domain.SourceUserCreated,
		},
		{
			ID:          "3",
			Name:        "Coffee & Code",
			Description: "Bring your laptop and join fellow developers for coffee and coding.",
			StartsAt:    time.Date(2025, 7, 4, 10, 0, 0, 0, chicago),
			Location: domain.Location{
				Address:     "Starbucks, River North, Chicago, IL",
				Coordinates: geo.Coordinates{Latitude: 41.8955, Longitude: -87.6295},
			},
			Category:     "Networking",
			Attendees:    15,
			MaxAttendees: 25,
			Organizer:    "Chicago Developers",
			Source:       domain.SourceMeetup,
		},
	}
}
