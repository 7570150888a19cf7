package dto

import "time"

type EventOutput struct {
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

type LoadOutput struct {
	Events []EventOutput
	// Skipped names the providers that failed and were left out.
	Skipped []string
}

type CreateEventInput struct {
	Name         string
	Description  string
	StartsAt     time.Time
	Address      string
	Latitude     float64
	Longitude    float64
	Category     string
	MaxAttendees int
	Price        float64
	Organizer    string
}

type CreateEventOutput struct {
	Event    EventOutput
	NotePath string
}

type ImportFlyerInput struct {
	Path string
}
