package dto

import "time"

type PluginInfo struct {
	Name         string
	Version      string
	Enabled      bool
	Binary       string
	Capabilities []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type FetchInput struct {
	PluginName string
	VaultPath  string
	After      time.Time
	Limit      int
}

type EventRecord struct {
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

type FetchOutput struct {
	PluginName string
	Events     []EventRecord
	// Dropped counts records that failed validation.
	Dropped int
}
