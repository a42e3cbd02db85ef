package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists notes. Every method that addresses a single note
// filters by both note id and owner id; a note owned by someone else is
// reported exactly like a missing one ([ErrNoteNotFound]).
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	FindNote(ctx context.Context, userID, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error)
}
