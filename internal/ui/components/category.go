package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"eventdeck/internal/ui/theme"
)

// CategoryStyle is the badge shown for an event category.
type CategoryStyle struct {
	Icon  string
	Color lipgloss.Color
}

var categoryStyles = map[string]CategoryStyle{
	"outdoor":    {Icon: "⛰", Color: theme.Green},
	"sports":     {Icon: "🏀", Color: theme.Peach},
	"networking": {Icon: "👥", Color: theme.Blue},
	"food":       {Icon: "🍴", Color: theme.Yellow},
	"music":      {Icon: "♫", Color: theme.Mauve},
}

var defaultCategoryStyle = CategoryStyle{Icon: "📅", Color: theme.Subtext0}

var titleCaser = cases.Title(language.English)

// Category looks up the style for a category tag; unknown tags get the
// calendar default.
func Category(tag string) CategoryStyle {
	if style, ok := categoryStyles[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return style
	}
	return defaultCategoryStyle
}

// CategoryLabel renders "<icon> <Title>" in the category color.
func CategoryLabel(tag string) string {
	style := Category(tag)
	label := titleCaser.String(strings.TrimSpace(tag))
	if label == "" {
		label = "Event"
	}
	return lipgloss.NewStyle().Foreground(style.Color).Bold(true).Render(style.Icon + " " + label)
}
