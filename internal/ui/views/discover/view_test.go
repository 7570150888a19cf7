package discover_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	deckdto "eventdeck/internal/modules/deck/dto"
	"eventdeck/internal/ui/views/discover"
)

type fakeDeck struct {
	cards  []deckdto.Card
	pos    int
	swipes []string
	fail   error
}

func (f *fakeDeck) current() deckdto.CardOutput {
	if f.pos >= len(f.cards) {
		return deckdto.CardOutput{
			Exhausted:  true,
			EmptyTitle: "No more events",
			EmptyHint:  "Check back later for new activities!",
			Position:   f.pos,
			Total:      len(f.cards),
		}
	}
	return deckdto.CardOutput{Card: f.cards[f.pos], Position: f.pos, Total: len(f.cards)}
}

func (f *fakeDeck) Enter(context.Context) (deckdto.SessionOutput, error) {
	f.pos = 0
	return deckdto.SessionOutput{SessionID: "s1", Current: f.current()}, nil
}

func (f *fakeDeck) Swipe(_ context.Context, input deckdto.SwipeInput) (deckdto.SwipeOutput, error) {
	if f.fail != nil {
		return deckdto.SwipeOutput{}, f.fail
	}
	f.swipes = append(f.swipes, input.Direction)
	out := deckdto.SwipeOutput{Gesture: input.Direction}
	if f.pos >= len(f.cards) {
		out.Next = f.current()
		return out, nil
	}
	if input.Direction == "right" || input.Direction == "left" {
		out.Decisive = true
		if input.Direction == "right" {
			out.Alert = `You're interested in "` + f.cards[f.pos].Name + `"`
		}
		f.pos++
	}
	out.Next = f.current()
	return out, nil
}

func (f *fakeDeck) Undo(context.Context) (deckdto.UndoOutput, error) {
	if f.pos == 0 {
		return deckdto.UndoOutput{}, errors.New("nothing to undo")
	}
	f.pos--
	return deckdto.UndoOutput{Decision: "interested", Current: f.current()}, nil
}

// run feeds cmd's message back into the model, the way the runtime would.
func run(t *testing.T, m discover.Model, cmd tea.Cmd) discover.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			inner := c()
			switch inner.(type) {
			case discover.EnteredMsg, discover.SwipedMsg, discover.UndoneMsg:
				m, _ = m.Update(inner)
			}
		}
		return m
	}
	m, _ = m.Update(msg)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSwipeThroughDeck(t *testing.T) {
	t.Parallel()
	deck := &fakeDeck{cards: []deckdto.Card{
		{ID: "a", Name: "Saturday Morning Hike", Category: "outdoor"},
		{ID: "b", Name: "Pickup Basketball", Category: "sports"},
	}}
	m := discover.New(deck)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.SessionID() != "" {
		t.Fatalf("expected no session before enter")
	}
	cmd := m.Enter()
	m = run(t, m, cmd)
	if !strings.Contains(m.View(), "Saturday Morning Hike") {
		t.Fatalf("expected first card in view")
	}
	if m.SessionID() != "s1" {
		t.Fatalf("expected session s1, got %q", m.SessionID())
	}

	m, cmd = m.Update(key("up"))
	m = run(t, m, cmd)
	if !strings.Contains(m.View(), "Saturday Morning Hike") {
		t.Fatalf("non-decisive gesture must keep the card")
	}

	m, cmd = m.Update(key("right"))
	m = run(t, m, cmd)
	if m.Alert() != `You're interested in "Saturday Morning Hike"` {
		t.Fatalf("unexpected alert: %q", m.Alert())
	}
	m, cmd = m.Update(key("h"))
	m = run(t, m, cmd)
	if !strings.Contains(m.View(), "No more events") {
		t.Fatalf("expected exhausted view, got:\n%s", m.View())
	}

	// Swipes on an exhausted deck still reach the classifier, which ignores them.
	m, cmd = m.Update(key("right"))
	m = run(t, m, cmd)
	if got := strings.Join(deck.swipes, ","); got != "up,right,left,right" {
		t.Fatalf("unexpected swipes: %s", got)
	}
}

func TestUndoRestoresCard(t *testing.T) {
	t.Parallel()
	deck := &fakeDeck{cards: []deckdto.Card{{ID: "a", Name: "Coffee & Code"}}}
	m := discover.New(deck)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	cmd := m.Enter()
	m = run(t, m, cmd)
	m, cmd = m.Update(key("right"))
	m = run(t, m, cmd)
	m, cmd = m.Update(key("u"))
	m = run(t, m, cmd)
	if !strings.Contains(m.View(), "Coffee & Code") {
		t.Fatalf("expected undone card back in view")
	}
}

func TestSinkFailureKeepsCard(t *testing.T) {
	t.Parallel()
	deck := &fakeDeck{cards: []deckdto.Card{{ID: "a", Name: "Coffee & Code"}}}
	m := discover.New(deck)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	cmd := m.Enter()
	m = run(t, m, cmd)
	deck.fail = errors.New("disk full")
	m, cmd = m.Update(key("right"))
	m = run(t, m, cmd)
	view := m.View()
	if !strings.Contains(view, "Coffee & Code") || !strings.Contains(view, "disk full") {
		t.Fatalf("expected card and error in view, got:\n%s", view)
	}
}
