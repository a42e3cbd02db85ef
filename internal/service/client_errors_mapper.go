// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

// mapAdapterError translates an adapter error into a service error. The
// server message is kept in the error text so DisplayMessage can show it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrSessionExpired, msg)

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidCredentials {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNoteNotFound, msg)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %s", ErrUserAlreadyExists, msg)

	case errors.Is(err, adapter.ErrRejected):
		if msg == app.MsgUserAlreadyExists {
			return fmt.Errorf("%w: %s", ErrUserAlreadyExists, msg)
		}
		return fmt.Errorf("%w: %s", ErrServerRejected, msg)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrServerRejected, msg)
	}

	return err
}

// extractBody returns the part after the first ": ", which is the server
// message for adapter errors.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// DisplayMessage returns the text to show the user for err: the server
// message when there is one, otherwise fallback.
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	for _, target := range []error{
		ErrSessionExpired, ErrInvalidCredentials, ErrInvalidDataProvided,
		ErrNoteNotFound, ErrUserAlreadyExists, ErrServerRejected,
	} {
		if errors.Is(err, target) {
			if body := extractBody(err); body != err.Error() && body != "" {
				return body
			}
			return target.Error()
		}
	}

	if errors.Is(err, ErrSubmitInProgress) || errors.Is(err, ErrNotLoggedIn) {
		return err.Error()
	}
	if fallback == "" {
		return msgUnexpectedFailed
	}
	return fallback
}
