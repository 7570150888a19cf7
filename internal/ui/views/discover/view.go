package discover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	deckdto "eventdeck/internal/modules/deck/dto"
	"eventdeck/internal/platform/geo"
	"eventdeck/internal/ui/components"
	"eventdeck/internal/ui/theme"
)

// Port is the minimal interface this view needs from the deck use-case.
type Port interface {
	Enter(ctx context.Context) (deckdto.SessionOutput, error)
	Swipe(ctx context.Context, input deckdto.SwipeInput) (deckdto.SwipeOutput, error)
	Undo(ctx context.Context) (deckdto.UndoOutput, error)
}

// EnteredMsg is sent when a fresh deck session is ready.
type EnteredMsg struct {
	Session deckdto.SessionOutput
	Err     error
}

// SwipedMsg is sent when a gesture has been classified.
type SwipedMsg struct {
	Out deckdto.SwipeOutput
	Err error
}

// UndoneMsg is sent when the last decision has been reverted.
type UndoneMsg struct {
	Out deckdto.UndoOutput
	Err error
}

type Model struct {
	port      Port
	spinner   spinner.Model
	renderer  *glamour.TermRenderer
	card      deckdto.CardOutput
	sessionID string
	origin    geo.Coordinates
	hasPos    bool
	ready     bool
	// busy is set while a gesture is being classified.
	busy   bool
	alert  string
	err    string
	now    func() time.Time
	width  int
	height int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, now: time.Now}
}

func (m Model) Init() tea.Cmd { return nil }

// Enter starts a new session; the previous one, if any, is discarded.
func (m *Model) Enter() tea.Cmd {
	m.ready = false
	m.busy = true
	m.alert = ""
	m.err = ""
	return tea.Batch(m.enterCmd(), m.spinner.Tick)
}

// Undo reverts the last decision of the current session.
func (m *Model) Undo() tea.Cmd {
	if !m.ready || m.busy {
		return nil
	}
	m.busy = true
	return m.undoCmd()
}

// SetOrigin enables distance labels on cards.
func (m *Model) SetOrigin(lat, lon float64) {
	m.origin = geo.Coordinates{Latitude: lat, Longitude: lon}
	m.hasPos = true
}

// Alert returns the message raised by the last decision.
func (m Model) Alert() string { return m.alert }

// SessionID is the deck session currently shown, empty before the first
// successful Enter.
func (m Model) SessionID() string { return m.sessionID }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case EnteredMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.ready = true
		m.sessionID = msg.Session.SessionID
		m.card = msg.Session.Current

	case SwipedMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = "could not save your choice: " + msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.card = msg.Out.Next
		m.alert = msg.Out.Alert

	case UndoneMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.card = msg.Out.Current
		m.alert = "undid " + msg.Out.Decision

	case spinner.TickMsg:
		if m.busy && !m.ready {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if !m.ready || m.busy {
			return m, nil
		}
		switch msg.String() {
		case "right", "l":
			return m.swipe(deckdto.DirectionRight)
		case "left", "h":
			return m.swipe(deckdto.DirectionLeft)
		case "up", "k":
			return m.swipe(deckdto.DirectionUp)
		case "down", "j":
			return m.swipe(deckdto.DirectionDown)
		case "esc":
			return m.swipe(deckdto.DirectionCancel)
		case "u", "backspace":
			cmd := m.Undo()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		if m.err != "" {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
				theme.Error.Render("Could not load events: "+m.err))
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading events…")
	}

	var body string
	if m.card.Exhausted {
		body = theme.Title.Render(m.card.EmptyTitle) + "\n\n" +
			theme.Muted.Render(m.card.EmptyHint)
		body = theme.Pane.Width(m.cardWidth()).Align(lipgloss.Center).Render(body)
	} else {
		body = theme.PaneActive.Width(m.cardWidth()).Render(m.renderCard())
	}

	lines := []string{body}
	if m.err != "" {
		lines = append(lines, theme.Error.Render(m.err))
	} else if m.alert != "" {
		lines = append(lines, theme.Hot.Render(m.alert))
	}
	lines = append(lines, theme.Muted.Render("←/h: pass  →/l: interested  u: undo"))
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) swipe(direction string) (Model, tea.Cmd) {
	m.busy = true
	m.alert = ""
	return m, m.swipeCmd(direction)
}

func (m *Model) resize() {
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.cardWidth()-4),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) cardWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) renderCard() string {
	c := m.card.Card
	var sb strings.Builder
	sb.WriteString(components.CategoryLabel(c.Category))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("   %d / %d", m.card.Position+1, m.card.Total)) + "\n\n")
	sb.WriteString(theme.Title.Render(c.Name) + "\n")
	when := components.EventDate(c.StartsAt)
	if rel := components.Relative(c.StartsAt, m.now()); rel != "" {
		when += theme.Muted.Render("  (" + rel + ")")
	}
	sb.WriteString(when + "\n")
	if c.Address != "" {
		addr := c.Address
		if km, ok := m.distanceKm(c); ok {
			addr += theme.Muted.Render("  " + components.Distance(km))
		}
		sb.WriteString(addr + "\n")
	}
	sb.WriteString(components.Attendance(c.Attendees, c.MaxAttendees) + theme.Muted.Render("  ·  ") + components.Price(c.Price) + "\n")
	if c.Organizer != "" {
		sb.WriteString(theme.Muted.Render("by ") + c.Organizer + theme.Muted.Render("  via "+c.Source) + "\n")
	}
	if desc := strings.TrimSpace(c.Description); desc != "" {
		sb.WriteString("\n" + m.renderDescription(desc))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderDescription(desc string) string {
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(desc); err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return desc
}

func (m Model) distanceKm(c deckdto.Card) (float64, bool) {
	target := geo.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
	if !m.hasPos || target.IsZero() {
		return 0, false
	}
	return geo.DistanceKm(m.origin, target), true
}

func (m Model) enterCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.Enter(context.Background())
		return EnteredMsg{Session: session, Err: err}
	}
}

func (m Model) swipeCmd(direction string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Swipe(context.Background(), deckdto.SwipeInput{Direction: direction})
		return SwipedMsg{Out: out, Err: err}
	}
}

func (m Model) undoCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Undo(context.Background())
		return UndoneMsg{Out: out, Err: err}
	}
}
