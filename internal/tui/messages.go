package tui

import (
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageNotes    = "notes"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// authDoneMsg is the result of a login or registration attempt.
type authDoneMsg struct {
	session models.Session
	err     error
}

// sessionStartedMsg opens the notes page for an authenticated user.
type sessionStartedMsg struct {
	session models.Session
}

// loggedOutMsg ends the session; reason is shown on the login page.
type loggedOutMsg struct {
	reason string
}

type noticeMsg struct {
	text string
}

type notesLoadedMsg struct {
	err error
}

type noteOpenedMsg struct {
	note models.Note
	err  error
	// markSeen is set when the note was unseen before opening.
	markSeen bool
}

type noteSeenMsg struct {
	err error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

// noteOpDoneMsg reports a finished delete, pin or search.
type noteOpDoneMsg struct {
	err error
}

type notificationMsg service.Notification

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
