package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var clientNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestClientAuth(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewClientAuthService(sessions, serverAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return clientNow }

	return svc, serverAdapter, sessions
}

var bob = models.User{ID: "u-bob", FullName: "Bob", Email: "bob@x.io"}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)
	req := models.RegisterRequest{FullName: "Bob", Email: "bob@x.io", Password: "p"}

	serverAdapter.EXPECT().Register(gomock.Any(), req).Return(models.AuthResponse{AccessToken: "tok", User: &bob}, nil)
	serverAdapter.EXPECT().SetToken("tok")
	sessions.EXPECT().SaveSession(gomock.Any(), models.Session{Token: "tok", User: bob, SavedAt: clientNow}).Return(nil)

	session, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, bob, session.User)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuth(t)

	serverAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrRejected, "User already exist!"))

	_, err := svc.Register(context.Background(), models.RegisterRequest{})

	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, "User already exist!", DisplayMessage(err, ""))
}

func TestClientAuthService_Register_EmptyResponse(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuth(t)

	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrServerRejected)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)
	req := models.LoginRequest{Email: "bob@x.io", Password: "p"}

	gomock.InOrder(
		serverAdapter.EXPECT().Login(gomock.Any(), req).Return(models.AuthResponse{AccessToken: "tok", Email: "bob@x.io"}, nil),
		serverAdapter.EXPECT().SetToken("tok"),
		serverAdapter.EXPECT().GetUser(gomock.Any()).Return(bob, nil),
		serverAdapter.EXPECT().SetToken("tok"),
		sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	session, err := svc.Login(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, bob, session.User)
	assert.Equal(t, clientNow, session.SavedAt)
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuth(t)

	serverAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Invalid credentials"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@x.io", Password: "bad"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials", DisplayMessage(err, ""))
}

func TestClientAuthService_Login_SaveFails(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "tok"}, nil)
	serverAdapter.EXPECT().SetToken("tok").Times(2)
	serverAdapter.EXPECT().GetUser(gomock.Any()).Return(bob, nil)
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorContains(t, err, "disk full")
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_NothingStored(t *testing.T) {
	svc, _, sessions := newTestClientAuth(t)

	sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_RestoreSession_Valid(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)

	stored := models.Session{Token: "tok", User: models.User{ID: "u-bob", FullName: "Old Name"}}
	sessions.EXPECT().LoadSession(gomock.Any()).Return(stored, nil)
	serverAdapter.EXPECT().SetToken("tok")
	serverAdapter.EXPECT().GetUser(gomock.Any()).Return(bob, nil)

	session, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "Bob", session.User.FullName)
}

func TestClientAuthService_RestoreSession_ExpiredClearsSession(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)

	sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{Token: "old"}, nil)
	serverAdapter.EXPECT().SetToken("old")
	serverAdapter.EXPECT().
		GetUser(gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Unauthorized"))
	serverAdapter.EXPECT().SetToken("")
	sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_RestoreSession_ServerDownKeepsSession(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)

	sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil)
	serverAdapter.EXPECT().SetToken("tok")
	serverAdapter.EXPECT().GetUser(gomock.Any()).Return(models.User{}, errors.New("connection refused"))

	_, err := svc.RestoreSession(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	svc, serverAdapter, sessions := newTestClientAuth(t)

	serverAdapter.EXPECT().SetToken("")
	sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unauthorized", fmt.Errorf("%w: x", adapter.ErrUnauthorized), ErrSessionExpired},
		{"bad request", fmt.Errorf("%w: Title is required", adapter.ErrBadRequest), ErrInvalidDataProvided},
		{"credentials", fmt.Errorf("%w: Invalid credentials", adapter.ErrBadRequest), ErrInvalidCredentials},
		{"not found", fmt.Errorf("%w: Note not found.", adapter.ErrNotFound), ErrNoteNotFound},
		{"rejected", fmt.Errorf("%w: nope", adapter.ErrRejected), ErrServerRejected},
		{"server error", fmt.Errorf("%w: boom", adapter.ErrInternalServerError), ErrServerRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	other := errors.New("dial tcp: refused")
	assert.Same(t, other, mapAdapterError(other))
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "Title is required", DisplayMessage(mapAdapterError(fmt.Errorf("%w: Title is required", adapter.ErrBadRequest)), "x"))
	assert.Equal(t, "Failed to fetch notes", DisplayMessage(errors.New("dial tcp: refused"), "Failed to fetch notes"))
	assert.Equal(t, msgUnexpectedFailed, DisplayMessage(errors.New("boom"), ""))
	assert.Empty(t, DisplayMessage(nil, "x"))
}
