package components_test

import (
	"strings"
	"testing"

	"eventdeck/internal/ui/components"
	"eventdeck/internal/ui/theme"
)

func TestCategoryTable(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"outdoor":    "⛰",
		"Sports":     "🏀",
		"Networking": "👥",
		"food":       "🍴",
		"music":      "♫",
		"karaoke":    "📅",
		"":           "📅",
	}
	for tag, icon := range cases {
		if got := components.Category(tag).Icon; got != icon {
			t.Fatalf("category %q: expected %q, got %q", tag, icon, got)
		}
	}
	if components.Category("unknown").Color != theme.Subtext0 {
		t.Fatalf("unknown categories must use the default color")
	}
}

func TestCategoryLabelTitleCases(t *testing.T) {
	t.Parallel()
	if got := components.CategoryLabel("outdoor"); !strings.Contains(got, "Outdoor") {
		t.Fatalf("expected title cased label, got %q", got)
	}
	if got := components.CategoryLabel(""); !strings.Contains(got, "Event") {
		t.Fatalf("expected fallback label, got %q", got)
	}
}
