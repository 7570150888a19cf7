package login_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	authdto "eventdeck/internal/modules/auth/dto"
	authin "eventdeck/internal/modules/auth/port/in"
	"eventdeck/internal/ui/views/login"
)

type fakeAuth struct {
	emails []string
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (authdto.AccountOutput, error) {
	if email == "" || password == "" {
		return authdto.AccountOutput{}, fmt.Errorf("invalid input: %w", authin.ErrMissingFields)
	}
	f.emails = append(f.emails, email)
	return authdto.AccountOutput{Email: email, DisplayName: "alex"}, nil
}

func (f *fakeAuth) Register(ctx context.Context, _ string, email, password string) (authdto.AccountOutput, error) {
	return f.Login(ctx, email, password)
}

func typeText(m login.Model, s string) login.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func submit(t *testing.T, m login.Model) (login.Model, login.SignedInMsg) {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a submit command")
	}
	msg, ok := cmd().(login.SignedInMsg)
	if !ok {
		t.Fatalf("expected SignedInMsg")
	}
	m, _ = m.Update(msg)
	return m, msg
}

func TestEmptyFieldsShowFillInMessage(t *testing.T) {
	t.Parallel()
	auth := &fakeAuth{}
	m := login.New(auth)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, msg := submit(t, m)
	if msg.Err == nil {
		t.Fatalf("expected an error for empty fields")
	}
	if !strings.Contains(m.View(), "Please fill in all fields") {
		t.Fatalf("expected fill-in message, got:\n%s", m.View())
	}
	if len(auth.emails) != 0 {
		t.Fatalf("no login should have happened: %v", auth.emails)
	}
}

func TestLoginSubmitsCredentials(t *testing.T) {
	t.Parallel()
	auth := &fakeAuth{}
	m := login.New(auth)
	m = typeText(m, "alex@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "secret")
	_, msg := submit(t, m)
	if msg.Err != nil {
		t.Fatalf("login: %v", msg.Err)
	}
	if msg.Account.Email != "alex@example.com" || len(auth.emails) != 1 {
		t.Fatalf("unexpected account %+v", msg.Account)
	}
}
