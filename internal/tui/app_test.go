package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, startPage string) RootModel {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	notes := mock.NewMockClientNoteService(ctrl)
	notes.EXPECT().Notes().Return(nil).AnyTimes()
	notes.EXPECT().SearchActive().Return(false).AnyTimes()

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(context.Background(), auth),
		pageRegister: NewRegisterModel(context.Background(), auth),
		pageNotes:    NewNotesModel(context.Background(), notes, auth),
	}
	return NewRootModel(pages, startPage, nil, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
}

func TestRootModel_NavigateTo(t *testing.T) {
	root := newTestRoot(t, pageMenu)

	next, _ := root.Update(NavigateTo{Page: pageRegister})
	r := next.(RootModel)
	_, ok := r.current.(*RegisterModel)
	assert.True(t, ok)

	next, cmd := r.Update(NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	_, ok = next.(RootModel).current.(*RegisterModel)
	assert.True(t, ok)
}

func TestRootModel_AuthDoneOpensNotes(t *testing.T) {
	root := newTestRoot(t, pageLogin)

	session := models.Session{Token: "t", User: models.User{ID: "u1", FullName: "Jane"}}
	next, cmd := root.Update(authDoneMsg{session: session})
	r := next.(RootModel)

	_, ok := r.current.(*NotesModel)
	require.True(t, ok)
	require.NotNil(t, cmd)

	started, ok := cmd().(sessionStartedMsg)
	require.True(t, ok)
	assert.Equal(t, "Jane", started.session.User.FullName)
}

func TestRootModel_LoggedOutOpensLogin(t *testing.T) {
	root := newTestRoot(t, pageNotes)

	next, cmd := root.Update(loggedOutMsg{reason: msgLoggedOut})
	r := next.(RootModel)

	_, ok := r.current.(*LoginModel)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, noticeMsg{text: msgLoggedOut}, cmd())
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	root := newTestRoot(t, pageMenu)

	next, _ := root.Update(keyPress("v"))
	r := next.(RootModel)
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.0.0")

	next, _ = r.Update(keyPress("esc"))
	r = next.(RootModel)
	assert.False(t, r.showBuildInfo)

	login := newTestRoot(t, pageLogin)
	next, _ = login.Update(keyPress("v"))
	assert.False(t, next.(RootModel).showBuildInfo)
}

func TestRootModel_CtrlC(t *testing.T) {
	root := newTestRoot(t, pageMenu)

	next, cmd := root.Update(keyPress("ctrl+c"))
	assert.True(t, next.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_StartMsgDelivered(t *testing.T) {
	root := newTestRoot(t, pageNotes)
	root.startMsg = sessionStartedMsg{session: models.Session{Token: "t"}}

	msgs := collectMsgs(root.Init())
	_, ok := findMsg[sessionStartedMsg](msgs)
	assert.True(t, ok)
}

func TestNotifier_WithoutProgram(t *testing.T) {
	n := NewNotifier()
	assert.NotPanics(t, func() {
		n.Notify(service.Notification{Kind: service.NotificationInfo, Message: "hello"})
	})
}
