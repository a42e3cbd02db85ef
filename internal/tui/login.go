// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	msgEmailAndPasswordRequired = "Email and password are required"
	msgLoginFailed              = "Login failed. Please try again."
)

// LoginModel is the sign-in form. A successful attempt produces an
// [authDoneMsg] that [RootModel] turns into a started session.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formFields
	submitting bool
	errMsg     string
	notice     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newFormFields(
			[]string{"Email", "Password"},
			newTextField("you@example.com", 254, false),
			newTextField("password", 72, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [authDoneMsg] with an error, shown under the form.
//   - [noticeMsg], shown above the error line (registration or logout).
//   - esc to go back, tab and shift+tab to move between fields, enter to submit.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err, msgLoginFailed)
		}
		return m, nil
	case noticeMsg:
		m.reset()
		m.notice = msg.text
		return m, textinput.Blink
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
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

			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = msgEmailAndPasswordRequired
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{Email: email, Password: password})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	writeFormFooter(&b, "Log in", m.submitting, m.errMsg, m.notice)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}

func (m *LoginModel) reset() {
	m.form.reset()
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
}
