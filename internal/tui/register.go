package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgRegisterFieldsRequired = "Full name, email and password are required"
	msgRegistrationFailed     = "Registration failed. Please try again."
)

// RegisterModel is the create-account form. The server signs the new user
// in, so success leads straight to the notes page.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formFields
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newFormFields(
			[]string{"Full name", "Email", "Password"},
			newTextField("Jane Doe", 128, false),
			newTextField("you@example.com", 254, false),
			newTextField("at least 8 characters", 72, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err, msgRegistrationFailed)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.form.reset()
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				FullName: strings.TrimSpace(m.form.value(0)),
				Email:    strings.TrimSpace(m.form.value(1)),
				Password: m.form.value(2),
			}
			if req.FullName == "" || req.Email == "" || req.Password == "" {
				m.errMsg = msgRegisterFieldsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	writeFormFooter(&b, "Create account", m.submitting, m.errMsg, "")

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}
