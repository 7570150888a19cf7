package dto

import "time"

type RecordInput struct {
	EventID   string
	DecidedAt time.Time
}

type RecordOutput struct {
	Match MatchOutput
	// Created is false when the event was already matched.
	Created bool
}

type MatchOutput struct {
	ID        string
	EventID   string
	Status    string
	MatchedAt time.Time
	// Event fields are empty when the event is no longer in the catalog.
	EventName        string
	StartsAt         time.Time
	Address          string
	Category         string
	OthersInterested int
	Resolved         bool
}

type StatsOutput struct {
	Total     int
	Pending   int
	Confirmed int
}
