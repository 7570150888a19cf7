package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	profiledto "eventdeck/internal/modules/profile/dto"
	"eventdeck/internal/ui/theme"
)

// Port is the minimal interface this view needs from the profile use-case.
type Port interface {
	Get(ctx context.Context) (profiledto.ProfileOutput, error)
}

// LoadedMsg is sent when the profile has been fetched.
type LoadedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

// LogoutRequestedMsg asks the parent to sign the user out.
type LogoutRequestedMsg struct{}

type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	profile  profiledto.ProfileOutput
	renderer *glamour.TermRenderer
	loaded   bool
	loading  bool
	err      string
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, viewport: viewport.New(0, 0), spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

// Reload fetches the profile and its stats again.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.loaded {
			m.viewport.SetContent(m.renderContent())
		}

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.loaded = true
		m.profile = msg.Profile
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "o" {
			return m, func() tea.Msg { return LogoutRequestedMsg{} }
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading && !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading profile…")
	}
	if m.err != "" && !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Error.Render("Could not load profile: "+m.err))
	}
	header := m.renderHeader()
	stats := m.renderStats()
	footer := theme.Muted.Render("↑/↓: scroll  o: log out")

	vp := m.viewport
	vp.Height = m.height - lipgloss.Height(header) - lipgloss.Height(stats) - 1
	if vp.Height < 1 {
		vp.Height = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, stats, vp.View(), footer)
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 6
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderHeader() string {
	p := m.profile
	name := theme.Title.Render(p.Name)
	if p.Age > 0 {
		name += theme.Muted.Render(fmt.Sprintf(", %d", p.Age))
	}
	line := []string{name}
	if p.Location != "" {
		line = append(line, theme.Muted.Render("📍 "+p.Location))
	}
	if p.Email != "" {
		line = append(line, theme.Muted.Render(p.Email))
	}
	return strings.Join(line, "  ") + "\n"
}

func (m Model) renderStats() string {
	s := m.profile.Stats
	cell := func(value int, label string) string {
		return lipgloss.NewStyle().Width(18).Align(lipgloss.Center).Render(
			theme.Hot.Render(fmt.Sprint(value)) + "\n" + theme.Muted.Render(label))
	}
	return theme.Pane.Padding(0, 1).Render(lipgloss.JoinHorizontal(lipgloss.Top,
		cell(s.EventsAttended, "Events Attended"),
		cell(s.Matches, "Matches"),
		cell(s.Confirmed, "Confirmed"),
	))
}

// renderContent renders the free-form part of the profile as markdown.
func (m Model) renderContent() string {
	p := m.profile
	var md strings.Builder
	md.WriteString("## About\n\n")
	if p.Bio != "" {
		md.WriteString(p.Bio + "\n\n")
	} else {
		md.WriteString("_No bio yet._\n\n")
	}
	if len(p.Interests) > 0 {
		md.WriteString("## Interests\n\n")
		for _, interest := range p.Interests {
			md.WriteString("- " + interest + "\n")
		}
		md.WriteString("\n")
	}
	if p.HasPosition {
		md.WriteString(fmt.Sprintf("## Distance reference\n\n%.4f, %.4f\n", p.Latitude, p.Longitude))
	}
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md.String()); err == nil {
			return rendered
		}
	}
	return md.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.port.Get(context.Background())
		return LoadedMsg{Profile: profile, Err: err}
	}
}
