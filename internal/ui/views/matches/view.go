package matches

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	matchesdto "eventdeck/internal/modules/matches/dto"
	"eventdeck/internal/ui/components"
	"eventdeck/internal/ui/theme"
)

// Port is the minimal interface this view needs from the matches use-case.
type Port interface {
	List(ctx context.Context) ([]matchesdto.MatchOutput, error)
	Confirm(ctx context.Context, eventID string) (matchesdto.MatchOutput, error)
}

type LoadedMsg struct {
	Matches []matchesdto.MatchOutput
	Err     error
}

type ConfirmedMsg struct {
	Match matchesdto.MatchOutput
	Err   error
}

type matchItem struct {
	match matchesdto.MatchOutput
}

func (i matchItem) Title() string {
	if i.match.Resolved {
		return i.match.EventName
	}
	return i.match.EventID
}

func (i matchItem) Description() string {
	parts := []string{statusBadge(i.match.Status)}
	if i.match.Resolved {
		parts = append(parts, components.EventDate(i.match.StartsAt), components.OthersInterested(i.match.OthersInterested))
	} else {
		parts = append(parts, "event no longer listed")
	}
	return strings.Join(parts, "  ")
}

func (i matchItem) FilterValue() string { return i.match.EventName + " " + i.match.Category }

type Model struct {
	port    Port
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	err     string
	now     func() time.Time
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Your Matches"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("match", "matches")

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload refreshes the list, e.g. when the tab becomes active.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// Confirm marks the match for eventID as confirmed.
func (m Model) Confirm(eventID string) tea.Cmd {
	return func() tea.Msg {
		match, err := m.port.Confirm(context.Background(), eventID)
		return ConfirmedMsg{Match: match, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		items := make([]list.Item, len(msg.Matches))
		for i, match := range msg.Matches {
			items[i] = matchItem{match: match}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case ConfirmedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		for i, item := range m.list.Items() {
			if mi, ok := item.(matchItem); ok && mi.match.EventID == msg.Match.EventID {
				cmds = append(cmds, m.list.SetItem(i, matchItem{match: msg.Match}))
			}
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if !m.loading && !m.Filtering() && msg.String() == "c" {
			if item, ok := m.list.SelectedItem().(matchItem); ok {
				cmds = append(cmds, m.Confirm(item.match.EventID))
			}
			return m, tea.Batch(cmds...)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		m.detail.SetContent(m.renderDetail())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading matches…")
	}
	if len(m.list.Items()) == 0 {
		msg := theme.Title.Render("No matches yet") + "\n\n" +
			theme.Muted.Render("Swipe right on events in Discover to add them here.")
		if m.err != "" {
			msg += "\n\n" + theme.Error.Render(m.err)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	listW := m.width * 5 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedEventID returns the event of the highlighted match, if any.
func (m Model) SelectedEventID() (string, bool) {
	if item, ok := m.list.SelectedItem().(matchItem); ok {
		return item.match.EventID, true
	}
	return "", false
}

func (m *Model) resize() {
	listW := m.width * 5 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(matchItem)
	if !ok {
		return theme.Muted.Render("Select a match to see details")
	}
	d := item.match
	var sb strings.Builder
	if !d.Resolved {
		sb.WriteString(theme.Title.Render(d.EventID) + "\n\n")
		sb.WriteString(theme.Muted.Render("This event is no longer in the catalog.") + "\n")
	} else {
		sb.WriteString(components.CategoryLabel(d.Category) + "\n")
		sb.WriteString(theme.Title.Render(d.EventName) + "\n\n")
		sb.WriteString(theme.Muted.Render("when:    ") + components.EventDate(d.StartsAt) + "\n")
		if d.Address != "" {
			sb.WriteString(theme.Muted.Render("where:   ") + d.Address + "\n")
		}
		sb.WriteString(theme.Muted.Render("people:  ") + components.OthersInterested(d.OthersInterested) + "\n")
	}
	sb.WriteString(theme.Muted.Render("status:  ") + statusBadge(d.Status) + "\n")
	sb.WriteString(fmt.Sprintf("%s%s\n", theme.Muted.Render("matched: "), components.Relative(d.MatchedAt, m.now())))
	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("c: confirm  /: filter"))
	return sb.String()
}

func statusBadge(status string) string {
	if status == "confirmed" {
		return theme.BadgeConfirmed.Render("confirmed")
	}
	return theme.BadgePending.Render(status)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		matches, err := m.port.List(context.Background())
		return LoadedMsg{Matches: matches, Err: err}
	}
}
