// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	ids            idGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, ownerID string, draft models.NoteDraft) (models.Note, error) {
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	note, err := n.noteRepository.CreateNote(ctx, models.Note{
		ID:      n.ids.Generate(),
		UserID:  ownerID,
		Title:   draft.Title,
		Content: draft.Content,
		Tags:    tags,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return note, nil
}

// UpdateNote applies the fields present in update.
//
// Empty title and content are skipped. Tags replace the stored tags whenever
// they are non-nil, an empty slice included. isPinned is applied only when it
// is true: an edit can pin a note but never unpin it. Clients unpin through
// SetPinned.
func (n *noteService) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	var patch models.NotePatch
	if update.Title != "" {
		patch.Title = &update.Title
	}
	if update.Content != "" {
		patch.Content = &update.Content
	}
	if update.Tags != nil {
		patch.Tags = &update.Tags
	}
	if update.IsPinned != nil && *update.IsPinned {
		patch.IsPinned = update.IsPinned
	}

	return n.applyPatch(ctx, ownerID, noteID, patch)
}

func (n *noteService) SetPinned(ctx context.Context, ownerID, noteID string, isPinned bool) (models.Note, error) {
	return n.applyPatch(ctx, ownerID, noteID, models.NotePatch{IsPinned: &isPinned})
}

func (n *noteService) SetSeen(ctx context.Context, ownerID, noteID string, seen bool) (models.Note, error) {
	return n.applyPatch(ctx, ownerID, noteID, models.NotePatch{Seen: &seen})
}

func (n *noteService) applyPatch(ctx context.Context, ownerID, noteID string, patch models.NotePatch) (models.Note, error) {
	note, err := n.noteRepository.UpdateNote(ctx, ownerID, noteID, patch)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return models.Note{}, ErrNoteNotFound
	case errors.Is(err, store.ErrEmptyNotePatch):
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case err != nil:
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return note, nil
}

// DeleteNote checks the note exists for the owner before deleting it.
func (n *noteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if _, err := n.noteRepository.FindNote(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("note lookup failed: %w", err)
	}

	err := n.noteRepository.DeleteNote(ctx, ownerID, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		// deleted concurrently between the lookup and the delete
		return ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

func (n *noteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	return notes, nil
}

func (n *noteService) SearchNotes(ctx context.Context, ownerID, query string) ([]models.Note, error) {
	notes, err := n.noteRepository.SearchNotes(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("searching notes failed: %w", err)
	}
	return notes, nil
}
