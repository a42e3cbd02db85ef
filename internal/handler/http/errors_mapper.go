package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrNoteNotFound:            http.StatusNotFound,
}

// errorMessages is checked in order; the first match wins. Validator errors
// come first because they are wrapped together with ErrInvalidDataProvided.
var errorMessages = []struct {
	err     error
	message string
}{
	{validators.ErrEmptyFullName, app.MsgFullNameRequired},
	{validators.ErrEmptyEmail, app.MsgEmailRequired},
	{validators.ErrEmptyPassword, app.MsgPasswordRequired},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrEmptyTitle, app.MsgTitleRequired},
	{validators.ErrEmptyContent, app.MsgContentRequired},
	{validators.ErrNoChanges, app.MsgNoChangesProvided},
	{validators.ErrEmptySearchQuery, app.MsgSearchQueryRequired},
	{validators.ErrEmptyNoteID, app.MsgNoteNotFound},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUserAlreadyExists, app.MsgUserAlreadyExists},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrNoteNotFound, app.MsgNoteNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and writes the error envelope. Unknown errors
// become 500 with a generic message; their details only go to the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
