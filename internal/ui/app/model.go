package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "eventdeck/internal/modules/auth/dto"
	deckdto "eventdeck/internal/modules/deck/dto"
	locationdto "eventdeck/internal/modules/location/dto"
	matchesdto "eventdeck/internal/modules/matches/dto"
	plugindto "eventdeck/internal/modules/plugin/dto"
	profiledto "eventdeck/internal/modules/profile/dto"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/ui/components"
	"eventdeck/internal/ui/theme"
	discoverview "eventdeck/internal/ui/views/discover"
	loginview "eventdeck/internal/ui/views/login"
	matchesview "eventdeck/internal/ui/views/matches"
	pluginsview "eventdeck/internal/ui/views/plugins"
	profileview "eventdeck/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type authPort interface {
	Login(ctx context.Context, email, password string) (authdto.AccountOutput, error)
	Register(ctx context.Context, name, email, password string) (authdto.AccountOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (authdto.AccountOutput, error)
}

type deckPort interface {
	Enter(ctx context.Context) (deckdto.SessionOutput, error)
	Swipe(ctx context.Context, input deckdto.SwipeInput) (deckdto.SwipeOutput, error)
	Undo(ctx context.Context) (deckdto.UndoOutput, error)
	Leave(ctx context.Context, input deckdto.LeaveInput) error
	Summary(ctx context.Context) (deckdto.SummaryOutput, error)
}

type matchesPort interface {
	List(ctx context.Context) ([]matchesdto.MatchOutput, error)
	Confirm(ctx context.Context, eventID string) (matchesdto.MatchOutput, error)
}

type profilePort interface {
	Show(ctx context.Context) (profiledto.ProfileOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.ProfileOutput, error)
}

type locationPort interface {
	Locate(ctx context.Context) (locationdto.LocationOutput, error)
}

type pluginPort interface {
	List(ctx context.Context) ([]plugindto.PluginInfo, error)
	Doctor(ctx context.Context) ([]plugindto.DoctorResult, error)
	FetchEvents(ctx context.Context, input plugindto.FetchInput) (plugindto.FetchOutput, error)
}

// Ports groups everything the root model talks to. Plugin may be nil.
type Ports struct {
	Auth     authPort
	Deck     deckPort
	Matches  matchesPort
	Profile  profilePort
	Location locationPort
	Plugin   pluginPort
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDiscover tabID = iota
	tabMatches
	tabProfile
	tabSources
	tabCount
)

var tabLabels = [tabCount]string{
	"Discover", "Matches", "Profile", "Sources",
}

// ─── async messages ───────────────────────────────────────────────────────────

type accountLoadedMsg struct {
	account authdto.AccountOutput
	err     error
}

type loggedOutMsg struct{ err error }

type locatedMsg struct{ out locationdto.LocationOutput }

type deckLeftMsg struct{ err error }

type summaryMsg struct {
	out deckdto.SummaryOutput
	err error
}

type profileUpdatedMsg struct {
	out profiledto.ProfileOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Like    key.Binding
	Pass    key.Binding
	Undo    key.Binding
	Confirm key.Binding
	Logout  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Like:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "interested")),
		Pass:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pass")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo last swipe")),
		Confirm: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirm match")),
		Logout:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out (profile)")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Like, k.Pass, k.Undo},
		{k.Tab, k.Confirm, k.Logout},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It gates the app behind the login form,
// owns tab routing, the help overlay and the command palette, and starts a
// fresh deck session every time the Discover tab is entered.
type Model struct {
	ports     Ports
	vaultPath string

	loginView    loginview.Model
	discoverView discoverview.Model
	matchesView  matchesview.Model
	profileView  profileview.Model
	pluginView   pluginsview.Model

	signedIn  bool
	checking  bool
	account   authdto.AccountOutput
	location  locationdto.LocationOutput
	located   bool
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(vaultPath string, ports Ports) Model {
	var pluginV pluginsview.Model
	if ports.Plugin != nil {
		pluginV = pluginsview.New(ports.Plugin, vaultPath)
	} else {
		pluginV = pluginsview.New(nil, vaultPath)
	}

	return Model{
		ports:        ports,
		vaultPath:    vaultPath,
		loginView:    loginview.New(ports.Auth),
		discoverView: discoverview.New(ports.Deck),
		matchesView:  matchesview.New(ports.Matches),
		profileView:  profileview.New(profilePortBridge{p: ports.Profile}),
		pluginView:   pluginV,
		checking:     true,
		activeTab:    tabDiscover,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loginView.Init(),
		m.loadAccountCmd(),
		m.locateCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case accountLoadedMsg:
		m.checking = false
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNotAuthenticated) {
				m.status = "sign-in check: " + msg.err.Error()
			}
			return m, nil
		}
		return m.signIn(msg.account)

	case loginview.SignedInMsg:
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		if msg.Err != nil {
			return m, cmd
		}
		next, enterCmd := m.signIn(msg.Account)
		return next, tea.Batch(cmd, enterCmd)

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "log out failed: " + msg.err.Error()
			return m, nil
		}
		m.signedIn = false
		m.account = authdto.AccountOutput{}
		m.activeTab = tabDiscover
		m.status = "signed out"
		cmd := m.loginView.Reset()
		return m, cmd

	case locatedMsg:
		m.located = true
		m.location = msg.out
		if msg.out.Available {
			m.discoverView.SetOrigin(msg.out.Latitude, msg.out.Longitude)
		}
		return m, nil

	case deckLeftMsg:
		if msg.err != nil && !errors.Is(msg.err, apperrors.ErrNoActiveDeck) {
			m.status = "leave deck: " + msg.err.Error()
		}
		return m, nil

	case summaryMsg:
		if msg.err != nil {
			m.status = "summary: " + msg.err.Error()
		} else {
			s := msg.out
			m.status = fmt.Sprintf("seen %d of %d  interested %d  passed %d", s.Position, s.Total, s.Interested, s.Passed)
		}
		return m, nil

	case profileUpdatedMsg:
		if msg.err != nil {
			m.status = "profile: " + msg.err.Error()
			return m, nil
		}
		m.status = "profile updated"
		cmd := m.profileView.Reload()
		return m, cmd

	case profileview.LogoutRequestedMsg:
		return m, m.logoutCmd()

	case discoverview.SwipedMsg:
		var cmd tea.Cmd
		m.discoverView, cmd = m.discoverView.Update(msg)
		if msg.Err == nil && msg.Out.Emitted {
			m.status = "saved to matches"
		}
		return m, cmd

	case matchesview.ConfirmedMsg:
		if msg.Err == nil {
			m.status = "confirmed: " + msg.Match.EventName
		}
		var cmd tea.Cmd
		m.matchesView, cmd = m.matchesView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.signedIn {
			if m.checking {
				return m, nil
			}
			var cmd tea.Cmd
			m.loginView, cmd = m.loginView.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		}
	}

	if !m.signedIn {
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd
	}

	// Messages owned by a specific view reach it even when its tab is hidden.
	switch msg.(type) {
	case discoverview.EnteredMsg, discoverview.UndoneMsg:
		var cmd tea.Cmd
		m.discoverView, cmd = m.discoverView.Update(msg)
		return m, cmd
	case matchesview.LoadedMsg:
		var cmd tea.Cmd
		m.matchesView, cmd = m.matchesView.Update(msg)
		return m, cmd
	case profileview.LoadedMsg:
		var cmd tea.Cmd
		m.profileView, cmd = m.profileView.Update(msg)
		return m, cmd
	case pluginsview.ListedMsg, pluginsview.FetchDoneMsg, pluginsview.DoctorDoneMsg:
		var cmd tea.Cmd
		m.pluginView, cmd = m.pluginView.Update(msg)
		return m, cmd
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDiscover:
		m.discoverView, tabCmd = m.discoverView.Update(msg)
	case tabMatches:
		m.matchesView, tabCmd = m.matchesView.Update(msg)
	case tabProfile:
		m.profileView, tabCmd = m.profileView.Update(msg)
	case tabSources:
		m.pluginView, tabCmd = m.pluginView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.signedIn {
		if m.checking {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
				theme.Muted.Render("Checking sign-in…"))
		}
		return m.loginView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDiscover:
		return m.discoverView.View()
	case tabMatches:
		return m.matchesView.View()
	case tabProfile:
		return m.profileView.View()
	case tabSources:
		return m.pluginView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "eventdeck  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.account.DisplayName != "" {
		left = theme.Hot.Render("● "+m.account.DisplayName) + "  " + left
	}
	if m.located {
		if m.location.Available {
			left += theme.Muted.Render("  📍 " + m.location.Label)
		} else {
			left += theme.Muted.Render("  📍 " + m.location.Reason)
		}
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── navigation ──────────────────────────────────────────────────────────────

func (m Model) signIn(account authdto.AccountOutput) (Model, tea.Cmd) {
	m.signedIn = true
	m.account = account
	m.status = "welcome, " + account.DisplayName
	m.activeTab = tabDiscover
	m.propagateSize()
	cmd := tea.Batch(m.discoverView.Enter(), m.matchesView.Init(), m.pluginView.Init())
	return m, cmd
}

// switchTab leaves the deck when Discover loses focus and starts a fresh
// session when it regains it.
func (m Model) switchTab(next tabID) (tea.Model, tea.Cmd) {
	if next == m.activeTab {
		return m, nil
	}
	var cmds []tea.Cmd
	if m.activeTab == tabDiscover {
		cmds = append(cmds, m.leaveDeckCmd())
	}
	m.activeTab = next
	switch next {
	case tabDiscover:
		cmds = append(cmds, m.discoverView.Enter())
	case tabMatches:
		cmds = append(cmds, m.matchesView.Reload())
	case tabProfile:
		cmds = append(cmds, m.profileView.Reload())
	}
	return m, tea.Batch(cmds...)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "tab:discover":
		return m.switchTab(tabDiscover)
	case "tab:matches":
		return m.switchTab(tabMatches)
	case "tab:profile":
		return m.switchTab(tabProfile)
	case "tab:sources":
		return m.switchTab(tabSources)

	case "deck:undo":
		if m.activeTab != tabDiscover {
			m.status = "undo is only available in Discover"
			return m, nil
		}
		cmd := m.discoverView.Undo()
		return m, cmd

	case "deck:restart":
		if m.activeTab != tabDiscover {
			return m.switchTab(tabDiscover)
		}
		cmd := m.discoverView.Enter()
		return m, cmd

	case "deck:summary":
		return m, m.summaryCmd()

	case "matches:reload":
		cmd := m.matchesView.Reload()
		return m, cmd

	case "matches:confirm":
		eventID := ""
		if len(parts) >= 2 {
			eventID = parts[1]
		} else if id, ok := m.matchesView.SelectedEventID(); ok {
			eventID = id
		}
		if eventID == "" {
			m.status = "usage: matches:confirm <event-id>"
			return m, nil
		}
		return m, m.matchesView.Confirm(eventID)

	case "plugin:doctor":
		m.activeTab = tabSources
		cmd := m.pluginView.Doctor()
		return m, cmd

	case "plugin:fetch":
		if len(parts) < 2 {
			m.status = "usage: plugin:fetch <plugin>"
			return m, nil
		}
		m.activeTab = tabSources
		cmd := m.pluginView.Fetch(parts[1])
		return m, cmd

	case "profile:interests":
		raw := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.updateInterestsCmd(strings.Split(raw, ","))

	case "auth:logout":
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabMatches:
		return m.matchesView.Filtering()
	case tabSources:
		return m.pluginView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	m.loginView, _ = m.loginView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.discoverView, _ = m.discoverView.Update(sz)
	m.matchesView, _ = m.matchesView.Update(sz)
	m.profileView, _ = m.profileView.Update(sz)
	m.pluginView, _ = m.pluginView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadAccountCmd() tea.Cmd {
	return func() tea.Msg {
		account, err := m.ports.Auth.Current(context.Background())
		return accountLoadedMsg{account: account, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ports.Deck.Leave(context.Background(), deckdto.LeaveInput{}); err != nil && !errors.Is(err, apperrors.ErrNoActiveDeck) {
			return loggedOutMsg{err: err}
		}
		return loggedOutMsg{err: m.ports.Auth.Logout(context.Background())}
	}
}

func (m Model) locateCmd() tea.Cmd {
	if m.ports.Location == nil {
		return nil
	}
	return func() tea.Msg {
		out, err := m.ports.Location.Locate(context.Background())
		if err != nil {
			out = locationdto.LocationOutput{Reason: err.Error()}
		}
		return locatedMsg{out: out}
	}
}

// leaveDeckCmd ends the session the discover view is showing. It runs
// concurrently with a later Enter, so it is scoped to that session id.
func (m Model) leaveDeckCmd() tea.Cmd {
	sessionID := m.discoverView.SessionID()
	if sessionID == "" {
		return nil
	}
	return func() tea.Msg {
		return deckLeftMsg{err: m.ports.Deck.Leave(context.Background(), deckdto.LeaveInput{SessionID: sessionID})}
	}
}

func (m Model) summaryCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Deck.Summary(context.Background())
		return summaryMsg{out: out, err: err}
	}
}

func (m Model) updateInterestsCmd(interests []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Profile.Update(context.Background(), profiledto.UpdateInput{Interests: interests})
		return profileUpdatedMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type profilePortBridge struct{ p profilePort }

func (b profilePortBridge) Get(ctx context.Context) (profiledto.ProfileOutput, error) {
	return b.p.Show(ctx)
}
