package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRejected is returned for a 2xx response whose envelope has
	// "error": true, such as registering a taken email.
	ErrRejected = errors.New("request rejected by server")

	ErrEmptyResponse = errors.New("empty response payload")
)
