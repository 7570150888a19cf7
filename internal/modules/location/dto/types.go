package dto

import "time"

type LocationOutput struct {
	Available bool
	Latitude  float64
	Longitude float64
	Label     string
	Source    string
	At        time.Time
	// Reason explains why Available is false.
	Reason string
}
