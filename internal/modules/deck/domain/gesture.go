package domain

import (
	"fmt"
	"strings"
)

type Gesture string

const (
	GestureRight  Gesture = "right"
	GestureLeft   Gesture = "left"
	GestureUp     Gesture = "up"
	GestureDown   Gesture = "down"
	GestureCancel Gesture = "cancel"
)

type Decision string

const (
	DecisionInterested Decision = "interested"
	DecisionPassed     Decision = "passed"
)

var gestureAliases = map[string]Gesture{
	"right":  GestureRight,
	"r":      GestureRight,
	"yes":    GestureRight,
	"left":   GestureLeft,
	"l":      GestureLeft,
	"no":     GestureLeft,
	"up":     GestureUp,
	"u":      GestureUp,
	"down":   GestureDown,
	"d":      GestureDown,
	"cancel": GestureCancel,
}

func ParseGesture(raw string) (Gesture, error) {
	g, ok := gestureAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unknown swipe direction %q", raw)
	}
	return g, nil
}

// Decision maps the gesture to an outcome. Only right and left decide.
func (g Gesture) Decision() (Decision, bool) {
	switch g {
	case GestureRight:
		return DecisionInterested, true
	case GestureLeft:
		return DecisionPassed, true
	default:
		return "", false
	}
}
