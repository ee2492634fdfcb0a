package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/equanote/equanote/internal/service"
	"github.com/equanote/equanote/models"
)

// loginModel is the Bubble Tea model for the sign-in screen. It renders three
// text inputs (name, email, session token) and dispatches an async login
// command on submission. Pressing "g" starts a guest session instead: guest
// data lives locally and never syncs until the user signs in.
type loginModel struct {
	ctx   context.Context
	users service.UserService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	user models.User
	done bool
	quit bool
}

type loginDoneMsg struct {
	user models.User
	err  error
}

func newLoginModel(ctx context.Context, users service.UserService) loginModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 128
	emailInput.Width = 40

	tokenInput := textinput.New()
	tokenInput.Placeholder = "session token"
	tokenInput.CharLimit = 2048
	tokenInput.Width = 40
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'

	return loginModel{
		ctx:    ctx,
		users:  users,
		inputs: []textinput.Model{nameInput, emailInput, tokenInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "g":
			// Only treat "g" as the guest shortcut while no field has text,
			// otherwise it belongs to the focused input.
			if m.allEmpty() && !m.submitting {
				m.submitting = true
				return m, m.cmdGuestLogin()
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			token := strings.TrimSpace(m.inputs[2].Value())
			if name == "" || token == "" {
				m.errMsg = "name and session token are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(name, email, token)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("equanote — sign in"))
	b.WriteString("\n\n")
	labels := []string{"name ", "email", "token"}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")
	if m.submitting {
		b.WriteString(statusStyle.Render("signing in..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter sign in • g continue as guest • esc quit"))
	return appStyle.Render(b.String())
}

func (m *loginModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

func (m loginModel) allEmpty() bool {
	for _, input := range m.inputs {
		if input.Value() != "" {
			return false
		}
	}
	return true
}

func (m loginModel) cmdLogin(name, email, token string) tea.Cmd {
	return func() tea.Msg {
		user := models.User{Name: name, Email: email}
		if err := m.users.Login(m.ctx, user, token); err != nil {
			return loginDoneMsg{err: err}
		}
		current, err := m.users.CurrentUser(m.ctx)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{user: current}
	}
}

func (m loginModel) cmdGuestLogin() tea.Cmd {
	return func() tea.Msg {
		user, err := m.users.LoginAsGuest(m.ctx, "guest")
		return loginDoneMsg{user: user, err: err}
	}
}
