package domain

import (
	"fmt"
	"strings"
)

// Profile is the user's self-description shown on the profile tab.
type Profile struct {
	Name           string   `yaml:"name"`
	Age            int      `yaml:"age,omitempty"`
	Location       string   `yaml:"location,omitempty"`
	Bio            string   `yaml:"bio,omitempty"`
	Interests      []string `yaml:"interests,omitempty"`
	EventsAttended int      `yaml:"events_attended,omitempty"`
}

// Default is used until the user saves a profile of their own.
func Default() Profile {
	return Profile{
		Name:           "Alex Johnson",
		Age:            28,
		Location:       "Chicago, IL",
		Bio:            "Love exploring new activities and meeting like-minded people!",
		Interests:      []string{"Hiking", "Basketball", "Coffee", "Networking", "Photography"},
		EventsAttended: 15,
	}
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Age < 0 || p.Age > 150 {
		return fmt.Errorf("profile age out of range: %d", p.Age)
	}
	if p.EventsAttended < 0 {
		return fmt.Errorf("events attended must be non-negative")
	}
	return nil
}

// NormalizeInterests trims entries and drops blanks and case-insensitive
// duplicates, keeping the first spelling.
func NormalizeInterests(interests []string) []string {
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		key := strings.ToLower(interest)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, interest)
	}
	return out
}
