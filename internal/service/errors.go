package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoteNotFound        = errors.New("note not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Client-side errors.
var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrSessionExpired   = errors.New("session expired, please log in again")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrServerRejected   = errors.New("server rejected the request")
)
