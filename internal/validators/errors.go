package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName    = errors.New("full name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrNoChanges        = errors.New("no changes provided")
	ErrEmptySearchQuery = errors.New("search query is required")
	ErrEmptyNoteID      = errors.New("note id is required")
)
