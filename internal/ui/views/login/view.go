package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "eventdeck/internal/modules/auth/dto"
	authin "eventdeck/internal/modules/auth/port/in"
	"eventdeck/internal/ui/theme"
)

// Port is the minimal interface this view needs from the auth use-case.
type Port interface {
	Login(ctx context.Context, email, password string) (authdto.AccountOutput, error)
	Register(ctx context.Context, name, email, password string) (authdto.AccountOutput, error)
}

// SignedInMsg is sent when a login or registration attempt finishes.
type SignedInMsg struct {
	Account authdto.AccountOutput
	Err     error
}

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldPassword
	fieldCount
)

type Model struct {
	port     Port
	inputs   [fieldCount]textinput.Model
	focus    field
	register bool
	busy     bool
	err      string
	width    int
	height   int
}

func New(port Port) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 36
		inputs[i] = ti
	}
	inputs[fieldName].Placeholder = "Name"
	inputs[fieldEmail].Placeholder = "Email"
	inputs[fieldPassword].Placeholder = "Password"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'

	m := Model{port: port, inputs: inputs, focus: fieldEmail}
	m.inputs[fieldEmail].Focus()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Reset clears the form, e.g. after logging out.
func (m *Model) Reset() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.err = ""
	m.busy = false
	m.register = false
	m.focus = fieldEmail
	return m.inputs[fieldEmail].Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SignedInMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = describe(msg.Err)
		} else {
			m.err = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+r":
			m.register = !m.register
			m.err = ""
			cmd := m.setFocus(m.firstField())
			return m, cmd
		case "tab", "down":
			cmd := m.setFocus(m.nextField(1))
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus(m.nextField(-1))
			return m, cmd
		case "enter":
			if m.focus != fieldPassword {
				cmd := m.setFocus(m.nextField(1))
				return m, cmd
			}
			m.busy = true
			m.err = ""
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	title := "Welcome back"
	if m.register {
		title = "Create an account"
	}
	sb.WriteString(theme.Title.Render("eventdeck") + "\n")
	sb.WriteString(theme.Muted.Render(title) + "\n\n")
	for _, f := range m.fields() {
		sb.WriteString(m.inputs[f].View() + "\n")
	}
	sb.WriteString("\n")
	if m.busy {
		sb.WriteString(theme.Muted.Render("signing in…") + "\n")
	} else if m.err != "" {
		sb.WriteString(theme.Error.Render(m.err) + "\n")
	}
	toggle := "ctrl+r: create an account"
	if m.register {
		toggle = "ctrl+r: back to sign in"
	}
	sb.WriteString(theme.Muted.Render("enter: next / submit  " + toggle))

	form := theme.PaneActive.Width(44).Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// Registering reports whether the form is in sign-up mode.
func (m Model) Registering() bool { return m.register }

func (m Model) fields() []field {
	if m.register {
		return []field{fieldName, fieldEmail, fieldPassword}
	}
	return []field{fieldEmail, fieldPassword}
}

func (m Model) firstField() field { return m.fields()[0] }

func (m Model) nextField(step int) field {
	fields := m.fields()
	for i, f := range fields {
		if f == m.focus {
			return fields[(i+step+len(fields))%len(fields)]
		}
	}
	return fields[0]
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m Model) submitCmd() tea.Cmd {
	name := m.inputs[fieldName].Value()
	email := m.inputs[fieldEmail].Value()
	password := m.inputs[fieldPassword].Value()
	register := m.register
	return func() tea.Msg {
		var (
			account authdto.AccountOutput
			err     error
		)
		if register {
			account, err = m.port.Register(context.Background(), name, email, password)
		} else {
			account, err = m.port.Login(context.Background(), email, password)
		}
		return SignedInMsg{Account: account, Err: err}
	}
}

func describe(err error) string {
	if errors.Is(err, authin.ErrMissingFields) {
		msg := authin.ErrMissingFields.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	return err.Error()
}
