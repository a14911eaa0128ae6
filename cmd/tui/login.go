package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tickit/pkg/auth"
)

type loginModel struct {
	inputs  []textinput.Model
	focused int

	emailErr    string
	passwordErr string
}

const (
	emailField = iota
	passwordField
)

func newLoginModel() loginModel {
	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (l *loginModel) focus() tea.Cmd {
	for i := range l.inputs {
		l.inputs[i].Blur()
	}
	return l.inputs[l.focused].Focus()
}

// loginKey maps a validation error to the message shown under its field
func loginKey(err error) (field int, key string) {
	switch {
	case errors.Is(err, auth.ErrEmailRequired):
		return emailField, "auth.emailRequired"
	case errors.Is(err, auth.ErrEmailInvalid):
		return emailField, "auth.emailInvalid"
	case errors.Is(err, auth.ErrPasswordRequired):
		return passwordField, "auth.passwordRequired"
	case errors.Is(err, auth.ErrPasswordTooShort):
		return passwordField, "auth.passwordMinLength"
	}
	return -1, ""
}

func (m *app) updateLogin(msg tea.Msg) tea.Cmd {
	l := &m.login
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+t":
			m.toggleTheme()
			return nil
		case "ctrl+l":
			m.toggleLanguage()
			return nil
		case "tab", "down":
			l.focused = (l.focused + 1) % len(l.inputs)
			return l.focus()
		case "shift+tab", "up":
			l.focused = (l.focused - 1 + len(l.inputs)) % len(l.inputs)
			return l.focus()
		case "enter":
			if l.focused == emailField {
				l.focused = passwordField
				return l.focus()
			}
			return m.submitLogin()
		}
	}
	var cmd tea.Cmd
	l.inputs[l.focused], cmd = l.inputs[l.focused].Update(msg)
	return cmd
}

func (m *app) submitLogin() tea.Cmd {
	l := &m.login
	l.emailErr, l.passwordErr = "", ""

	// both fields report their problem at once
	email := strings.TrimSpace(l.inputs[emailField].Value())
	password := l.inputs[passwordField].Value()
	if err := auth.ValidateEmail(email); err != nil {
		_, key := loginKey(err)
		l.emailErr = m.t(key)
	}
	if err := auth.ValidatePassword(password); err != nil {
		_, key := loginKey(err)
		l.passwordErr = m.t(key, "min", auth.MinPasswordLength)
	}
	if l.emailErr != "" || l.passwordErr != "" {
		if l.emailErr == "" {
			l.focused = passwordField
		} else {
			l.focused = emailField
		}
		return l.focus()
	}

	err := m.session.Login(m.ctx, email, password)
	if !m.session.Authenticated() {
		// validated above, so only a changed rule gets here
		field, key := loginKey(err)
		if field == emailField {
			l.emailErr = m.t(key)
		} else {
			l.passwordErr = m.t(key, "min", auth.MinPasswordLength)
		}
		return nil
	}
	m.log.Info("signed in", "email", email)
	if err != nil {
		// signed in for this run, but it will not survive a restart
		m.fail(err)
	}
	m.login = newLoginModel()
	m.screen = screenList
	return m.load()
}

func (m *app) viewLogin() string {
	l := m.login
	s := m.styles
	field := func(i int, label, errMsg string) string {
		box := s.Input
		if i == l.focused {
			box = s.Focused
		}
		out := s.Label.Render(label) + "\n" + box.Render(l.inputs[i].View())
		if errMsg != "" {
			out += "\n" + s.Error.Render(errMsg)
		}
		return out
	}
	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("✓ tickit"),
		"",
		s.Title.Render(m.t("auth.welcome")),
		s.Subtitle.Render(m.t("auth.subtitle")),
		"",
		field(emailField, m.t("auth.email"), l.emailErr),
		"",
		field(passwordField, m.t("auth.password"), l.passwordErr),
		"",
		s.Key.Render("enter")+" "+s.Muted.Render(m.t("common.buttons.login"))+"  "+
			s.Key.Render("ctrl+t")+" "+s.Muted.Render(m.t("common.buttons.theme"))+"  "+
			s.Key.Render("ctrl+l")+" "+s.Muted.Render(m.t("common.buttons.language")),
	)
	if m.prefs.Language.RTL() {
		form = lipgloss.NewStyle().Align(lipgloss.Right).Render(form)
	}
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, max(m.height-1, lipgloss.Height(form)), lipgloss.Center, lipgloss.Center, form)
}
