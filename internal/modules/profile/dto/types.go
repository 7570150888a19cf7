package dto

type UpdateInput struct {
	// Nil fields are left unchanged.
	Name      *string
	Age       *int
	Location  *string
	Bio       *string
	Interests []string
}

type StatsOutput struct {
	EventsAttended int
	Matches        int
	Confirmed      int
}

type ProfileOutput struct {
	Name      string
	Email     string
	Age       int
	Location  string
	Bio       string
	Interests []string
	Stats     StatsOutput
	// Distances on cards are measured from here when HasPosition is set.
	HasPosition bool
	Latitude    float64
	Longitude   float64
}
