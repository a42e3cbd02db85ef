package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth)
	next, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, msgEmailAndPasswordRequired, next.(*LoginModel).errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	session := models.Session{Token: "tok", User: models.User{ID: "u1"}}
	auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "a@b.c", Password: "secret123"}).
		Return(session, nil)

	m := NewLoginModel(context.Background(), auth)
	typeText(m, " a@b.c ")
	m.Update(keyPress("tab"))
	typeText(m, "secret123")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	// a second enter while the request is in flight is ignored
	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again)

	done, ok := cmd().(authDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
	assert.Equal(t, "tok", done.session.Token)
}

func TestLoginModel_ShowsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	m.submitting = true

	m.Update(authDoneMsg{err: fmt.Errorf("%w: %s", service.ErrInvalidCredentials, "Invalid Credentials")})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid Credentials", m.errMsg)
	assert.Contains(t, m.View(), "Invalid Credentials")
}

func TestLoginModel_NoticeResetsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	typeText(m, "a@b.c")
	m.errMsg = "old"

	m.Update(noticeMsg{text: msgLoggedOut})

	assert.Equal(t, "", m.form.value(0))
	assert.Equal(t, "", m.errMsg)
	assert.Contains(t, m.View(), msgLoggedOut)
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	req := models.RegisterRequest{FullName: "Jane Doe", Email: "jane@example.com", Password: "password1"}
	auth.EXPECT().Register(gomock.Any(), req).Return(models.Session{Token: "tok"}, nil)

	m := NewRegisterModel(context.Background(), auth)
	typeText(m, "Jane Doe")
	m.Update(keyPress("tab"))
	typeText(m, "jane@example.com")
	m.Update(keyPress("tab"))
	typeText(m, "password1")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	done, ok := cmd().(authDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
}

func TestRegisterModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	typeText(m, "Jane")

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, msgRegisterFieldsRequired, m.errMsg)
}
