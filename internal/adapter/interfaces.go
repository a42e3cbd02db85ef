// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). A 2xx
// response whose envelope carries "error": true is reported as [ErrRejected].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register creates an account. On success the returned access token is
	// stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// GetUser returns the account the current token belongs to.
	GetUser(ctx context.Context) (models.User, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)
	AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	EditNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	SetPinned(ctx context.Context, noteID string, isPinned bool) (models.Note, error)
	SetSeen(ctx context.Context, noteID string, seen bool) (models.Note, error)
}
