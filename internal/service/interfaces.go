package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// NoteService manages the notes of a single owner. ownerID always comes
// from a verified token, never from the request body.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID string, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error)
	SetPinned(ctx context.Context, ownerID, noteID string, isPinned bool) (models.Note, error)
	SetSeen(ctx context.Context, ownerID, noteID string, seen bool) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	SearchNotes(ctx context.Context, ownerID, query string) ([]models.Note, error)
}

// NoteServiceWrapper decorates a NoteService with additional behavior
// such as validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
