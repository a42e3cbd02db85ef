package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client session: signing in, restoring the
// persisted session and signing out.
type ClientAuthService interface {
	// Register creates an account, stores the returned token and persists
	// the session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login exchanges credentials for a token, loads the account and
	// persists the session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// RestoreSession loads the persisted session and checks it against the
	// server. It returns ErrNotLoggedIn when nothing is stored and
	// ErrSessionExpired when the server no longer accepts the token.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the token and removes the persisted session.
	Logout(ctx context.Context) error
}

// ClientNoteService keeps the local list of notes in step with the server.
//
// Delete and TogglePin are applied locally before the server answers and
// are rolled back on failure. Add and Edit only touch the list once the
// server has returned the stored note. Operations on the same note run one
// at a time in the order they were issued.
type ClientNoteService interface {
	// Notes returns a sorted copy of the local list.
	Notes() []models.Note

	// SearchActive reports whether the list holds search results.
	SearchActive() bool

	Refresh(ctx context.Context) error
	Search(ctx context.Context, query string) error
	ClearSearch(ctx context.Context) error

	Add(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	Edit(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, noteID string) error
	TogglePin(ctx context.Context, noteID string) error

	// Open returns the note for reading and marks it seen locally.
	Open(ctx context.Context, noteID string) (models.Note, error)
	// MarkSeen records the seen state on the server. Only an expired
	// session is reported; other failures are logged and dropped.
	MarkSeen(ctx context.Context, noteID string) error

	// Reset drops all local state, used on logout.
	Reset()
}

// Notifier receives short user-facing messages about completed operations.
type Notifier interface {
	Notify(n Notification)
}
