package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldChanges     = "changes"
	FieldNoteID      = "note_id"
	FieldSearchQuery = "search_query"
)

// SearchQuery is the raw value of the search-notes query parameter.
// Only the empty string is rejected; whitespace is a valid query.
type SearchQuery string

// NoteID is a note identifier taken from the request path.
type NoteID string

type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateNoteDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateNoteDraft(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case SearchQuery:
		if value == "" {
			return ErrEmptySearchQuery
		}
		return nil

	case NoteID:
		if value == "" {
			return ErrEmptyNoteID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteDraft(_ context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if draft.Title == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if draft.Content == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteUpdate rejects an update that has no title, no content and
// no tags. isPinned alone is not a change.
func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if !update.HasChanges() {
				return ErrNoChanges
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
