package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-successful response into a sentinel error
// wrapped with the server message, so the UI can show it as is.
func mapHTTPError(resp *resty.Response) error {
	msg := responseMessage(resp)

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		var envelope models.Response
		if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error {
			return fmt.Errorf("%w: %s", ErrRejected, msg)
		}
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// responseMessage returns the envelope message, the raw body when it is not
// an envelope, or the status text for an empty body.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.Response
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
