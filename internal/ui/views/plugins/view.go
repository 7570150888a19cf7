package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plugindto "eventdeck/internal/modules/plugin/dto"
	"eventdeck/internal/ui/components"
	"eventdeck/internal/ui/theme"
)

// Port is the minimal interface this view needs from the plugin use-case.
type Port interface {
	List(ctx context.Context) ([]plugindto.PluginInfo, error)
	Doctor(ctx context.Context) ([]plugindto.DoctorResult, error)
	FetchEvents(ctx context.Context, input plugindto.FetchInput) (plugindto.FetchOutput, error)
}

// ListedMsg is sent when the installed plugins have been listed.
type ListedMsg struct {
	Plugins []plugindto.PluginInfo
	Err     error
}

// DoctorDoneMsg is sent when every plugin has been checked.
type DoctorDoneMsg struct {
	Results []plugindto.DoctorResult
	Err     error
}

// FetchDoneMsg is sent when a plugin has returned its events.
type FetchDoneMsg struct {
	Out plugindto.FetchOutput
	Err error
}

type pluginItem struct{ info plugindto.PluginInfo }

func (i pluginItem) Title() string { return i.info.Name }

func (i pluginItem) Description() string {
	state := "enabled"
	if !i.info.Enabled {
		state = "disabled"
	}
	return fmt.Sprintf("v%s  %s  [%s]", i.info.Version, state, strings.Join(i.info.Capabilities, ","))
}

func (i pluginItem) FilterValue() string { return i.info.Name }

type pane int

const (
	paneList   pane = iota // user picks a plugin
	paneOutput             // fetch or doctor result is displayed
)

// Model is the Sources tab: catalog plugins and what they currently return.
type Model struct {
	port      Port
	pane      pane
	list      list.Model
	output    viewport.Model
	spinner   spinner.Model
	loading   bool
	vaultPath string
	width     int
	height    int
}

func New(port Port, vaultPath string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Event source plugins"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:      port,
		pane:      paneList,
		list:      l,
		output:    vp,
		spinner:   sp,
		vaultPath: vaultPath,
	}
}

func (m Model) Init() tea.Cmd {
	if m.port == nil {
		return nil
	}
	return m.listCmd()
}

// Filtering reports whether the plugin list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Fetch asks the named plugin for its events; used by the command palette.
func (m *Model) Fetch(pluginName string) tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.fetchCmd(pluginName), m.spinner.Tick)
}

// Doctor checks every installed plugin.
func (m *Model) Doctor() tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.doctorCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ListedMsg:
		if msg.Err != nil {
			m.output.SetContent(theme.Hot.Render("Error listing plugins: " + msg.Err.Error()))
			m.pane = paneOutput
			return m, nil
		}
		items := make([]list.Item, len(msg.Plugins))
		for i, p := range msg.Plugins {
			items[i] = pluginItem{info: p}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case FetchDoneMsg:
		m.loading = false
		if msg.Err != nil {
			m.output.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
		} else {
			m.output.SetContent(renderFetch(msg.Out))
		}
		m.output.GotoTop()
		m.pane = paneOutput

	case DoctorDoneMsg:
		m.loading = false
		if msg.Err != nil {
			m.output.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
		} else {
			m.output.SetContent(renderDoctor(msg.Results))
		}
		m.output.GotoTop()
		m.pane = paneOutput

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch m.pane {
		case paneList:
			if m.Filtering() {
				break
			}
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(pluginItem); ok {
					cmds = append(cmds, m.Fetch(item.info.Name))
				}
				return m, tea.Batch(cmds...)
			case "d":
				cmd := m.Doctor()
				return m, cmd
			}
		case paneOutput:
			if msg.String() == "esc" {
				m.pane = paneList
				return m, nil
			}
		}
	}

	switch m.pane {
	case paneList:
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	case paneOutput:
		var vCmd tea.Cmd
		m.output, vCmd = m.output.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Working…")
	}
	if m.port == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Plugins are not configured."))
	}

	switch m.pane {
	case paneOutput:
		hint := theme.Muted.Render("esc: back to plugins  ↑/↓: scroll\n")
		m.output.Height = m.height - lipgloss.Height(hint)
		if m.output.Height < 1 {
			m.output.Height = 1
		}
		return lipgloss.JoinVertical(lipgloss.Left, hint, m.output.View())
	default:
		if len(m.list.Items()) == 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
				theme.Muted.Render("No plugins installed under "+m.vaultPath+"/.eventdeck/plugins"))
		}
		hint := theme.Muted.Render("enter: fetch events  d: doctor  /: filter")
		return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), hint)
	}
}

func (m *Model) resize() {
	m.list.SetSize(m.width, m.height-1)
	m.output.Width = m.width - 4
	m.output.Height = m.height - 2
}

func renderFetch(out plugindto.FetchOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s: %d events", out.PluginName, len(out.Events))) + "\n")
	if out.Dropped > 0 {
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d invalid records dropped", out.Dropped)) + "\n")
	}
	sb.WriteString("\n")
	for _, e := range out.Events {
		sb.WriteString(components.CategoryLabel(e.Category) + "  " + e.Name + "\n")
		sb.WriteString(theme.Muted.Render("  "+components.EventDate(e.StartsAt)+"  "+e.Address) + "\n")
	}
	return sb.String()
}

func renderDoctor(results []plugindto.DoctorResult) string {
	if len(results) == 0 {
		return theme.Muted.Render("No plugins installed.")
	}
	var sb strings.Builder
	for _, r := range results {
		mark := theme.BadgeConfirmed.Render("ok")
		if !r.ChecksumValid || !r.BinaryReachable || !r.LifecycleOK {
			mark = theme.BadgePending.Render("fail")
		}
		sb.WriteString(mark + " " + theme.Title.Render(r.Name) + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  checksum=%t binary=%t lifecycle=%t", r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)) + "\n")
		if r.Error != "" {
			sb.WriteString(theme.Error.Render("  "+r.Error) + "\n")
		}
	}
	return sb.String()
}

func (m Model) listCmd() tea.Cmd {
	return func() tea.Msg {
		plugins, err := m.port.List(context.Background())
		return ListedMsg{Plugins: plugins, Err: err}
	}
}

func (m Model) fetchCmd(pluginName string) tea.Cmd {
	input := plugindto.FetchInput{PluginName: pluginName, VaultPath: m.vaultPath}
	return func() tea.Msg {
		out, err := m.port.FetchEvents(context.Background(), input)
		return FetchDoneMsg{Out: out, Err: err}
	}
}

func (m Model) doctorCmd() tea.Cmd {
	return func() tea.Msg {
		results, err := m.port.Doctor(context.Background())
		return DoctorDoneMsg{Results: results, Err: err}
	}
}
