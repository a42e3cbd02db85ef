package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteValidationService checks request payloads before handing them to the
// wrapped NoteService. Validation failures wrap ErrInvalidDataProvided and
// the validator sentinel, so callers can pick a message with errors.Is.
type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *noteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *noteValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *noteValidationService) CreateNote(ctx context.Context, ownerID string, draft models.NoteDraft) (models.Note, error) {
	if err := v.validate(ctx, draft); err != nil {
		return models.Note{}, err
	}
	return v.inner.CreateNote(ctx, ownerID, draft)
}

func (v *noteValidationService) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := v.validate(ctx, update); err != nil {
		return models.Note{}, err
	}
	if err := v.validate(ctx, validators.NoteID(noteID)); err != nil {
		return models.Note{}, err
	}
	return v.inner.UpdateNote(ctx, ownerID, noteID, update)
}

func (v *noteValidationService) SetPinned(ctx context.Context, ownerID, noteID string, isPinned bool) (models.Note, error) {
	if err := v.validate(ctx, validators.NoteID(noteID)); err != nil {
		return models.Note{}, err
	}
	return v.inner.SetPinned(ctx, ownerID, noteID, isPinned)
}

func (v *noteValidationService) SetSeen(ctx context.Context, ownerID, noteID string, seen bool) (models.Note, error) {
	if err := v.validate(ctx, validators.NoteID(noteID)); err != nil {
		return models.Note{}, err
	}
	return v.inner.SetSeen(ctx, ownerID, noteID, seen)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := v.validate(ctx, validators.NoteID(noteID)); err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, ownerID, noteID)
}

func (v *noteValidationService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, ownerID)
}

func (v *noteValidationService) SearchNotes(ctx context.Context, ownerID, query string) ([]models.Note, error) {
	if err := v.validate(ctx, validators.SearchQuery(query)); err != nil {
		return nil, err
	}
	return v.inner.SearchNotes(ctx, ownerID, query)
}
