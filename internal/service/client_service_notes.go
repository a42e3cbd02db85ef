// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Client-side form checks, shown before anything is sent.
const (
	msgEnterTitle   = "Please enter a title."
	msgEnterContent = "Please add some content to your note."
)

type clientNoteService struct {
	adapter  adapter.ServerAdapter
	sessions *sessionKeeper
	queue    workers.Queue
	notifier Notifier
	logger   *logger.Logger

	mu           sync.Mutex
	notes        []models.Note
	searchActive bool
	submitting   bool
	// removed holds ids whose deletion the server confirmed; restoring a
	// snapshot never brings them back.
	removed map[string]struct{}
}

// NewClientNoteService builds the note service. A nil notifier discards
// notifications.
func NewClientNoteService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, queue workers.Queue, notifier Notifier, logger *logger.Logger) ClientNoteService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &clientNoteService{
		adapter:  serverAdapter,
		sessions: newSessionKeeper(sessions, serverAdapter, logger),
		queue:    queue,
		notifier: notifier,
		logger:   logger,
		removed:  make(map[string]struct{}),
	}
}

func (s *clientNoteService) Notes() []models.Note {
	s.mu.Lock()
	notes := cloneNotes(s.notes)
	s.mu.Unlock()

	models.SortNotes(notes)
	return notes
}

func (s *clientNoteService) SearchActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchActive
}

func (s *clientNoteService) Refresh(ctx context.Context) error {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return s.fail(ctx, err, msgFailedToFetch)
	}

	s.mu.Lock()
	s.notes = cloneNotes(notes)
	s.searchActive = false
	s.mu.Unlock()
	return nil
}

// Search replaces the list with the matches for query. A blank query is
// ignored.
func (s *clientNoteService) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	notes, err := s.adapter.SearchNotes(ctx, query)
	if err != nil {
		return s.fail(ctx, err, msgSearchFailed)
	}

	s.mu.Lock()
	s.notes = cloneNotes(notes)
	s.searchActive = true
	s.mu.Unlock()
	return nil
}

// ClearSearch leaves search mode by fetching the full list again.
func (s *clientNoteService) ClearSearch(ctx context.Context) error {
	s.mu.Lock()
	s.searchActive = false
	s.mu.Unlock()

	return s.Refresh(ctx)
}

func (s *clientNoteService) Add(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	if err := checkForm(draft.Title, draft.Content); err != nil {
		return models.Note{}, err
	}
	if err := s.beginSubmit(); err != nil {
		return models.Note{}, err
	}
	defer s.endSubmit()

	note, err := s.adapter.AddNote(ctx, draft)
	if err != nil {
		return models.Note{}, s.sessions.handle(ctx, err)
	}

	s.mu.Lock()
	s.notes = append([]models.Note{note.Clone()}, s.notes...)
	s.searchActive = false
	s.mu.Unlock()

	s.notifier.Notify(Notification{Kind: NotificationAdded, Message: msgNoteAdded})
	return note, nil
}

func (s *clientNoteService) Edit(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := checkForm(update.Title, update.Content); err != nil {
		return models.Note{}, err
	}
	if err := s.beginSubmit(); err != nil {
		return models.Note{}, err
	}
	defer s.endSubmit()

	var edited models.Note
	err := s.queue.Do(ctx, noteID, func(ctx context.Context) error {
		note, err := s.adapter.EditNote(ctx, noteID, update)
		if err != nil {
			return s.sessions.handle(ctx, err)
		}

		s.mu.Lock()
		s.replace(note)
		s.mu.Unlock()

		edited = note
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	s.notifier.Notify(Notification{Kind: NotificationUpdated, Message: msgNoteUpdated})
	return edited, nil
}

// Delete removes the note locally, then on the server. On failure the list
// is restored to what it was before the call.
func (s *clientNoteService) Delete(ctx context.Context, noteID string) error {
	return s.queue.Do(ctx, noteID, func(ctx context.Context) error {
		s.mu.Lock()
		idx := s.index(noteID)
		if idx < 0 {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}
		snapshot := cloneNotes(s.notes)
		s.notes = slices.Delete(s.notes, idx, idx+1)
		s.mu.Unlock()

		if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
			s.restore(snapshot)
			return s.fail(ctx, err, msgFailedToDelete)
		}

		s.mu.Lock()
		s.removed[noteID] = struct{}{}
		s.mu.Unlock()

		s.notifier.Notify(Notification{Kind: NotificationDeleted, Message: msgNoteDeleted})
		return nil
	})
}

// TogglePin flips the pin locally, then asks the server for the new state.
// The server's copy of the note replaces the local one only if the note is
// still in the list.
func (s *clientNoteService) TogglePin(ctx context.Context, noteID string) error {
	return s.queue.Do(ctx, noteID, func(ctx context.Context) error {
		s.mu.Lock()
		idx := s.index(noteID)
		if idx < 0 {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}
		snapshot := cloneNotes(s.notes)
		pinned := !s.notes[idx].IsPinned
		s.notes[idx].IsPinned = pinned
		s.mu.Unlock()

		note, err := s.adapter.SetPinned(ctx, noteID, pinned)
		if err != nil {
			s.restore(snapshot)
			return s.fail(ctx, err, msgFailedToUpdate)
		}

		s.mu.Lock()
		s.replace(note)
		s.mu.Unlock()

		s.notifier.Notify(Notification{Kind: NotificationInfo, Message: msgNotePinUpdated})
		return nil
	})
}

func (s *clientNoteService) Open(ctx context.Context, noteID string) (models.Note, error) {
	s.mu.Lock()
	idx := s.index(noteID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
	}
	s.notes[idx].Seen = true
	note := s.notes[idx].Clone()
	s.mu.Unlock()

	return note, nil
}

func (s *clientNoteService) MarkSeen(ctx context.Context, noteID string) error {
	return s.queue.Do(ctx, noteID, func(ctx context.Context) error {
		if _, err := s.adapter.SetSeen(ctx, noteID, true); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("note_id", noteID).Msg("marking note seen failed")
			if err = s.sessions.handle(ctx, err); errors.Is(err, ErrSessionExpired) {
				return err
			}
		}
		return nil
	})
}

func (s *clientNoteService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = nil
	s.searchActive = false
	s.removed = make(map[string]struct{})
}

func (s *clientNoteService) beginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmitInProgress
	}
	s.submitting = true
	return nil
}

func (s *clientNoteService) endSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// fail maps err, notifies the user and returns the mapped error.
func (s *clientNoteService) fail(ctx context.Context, err error, fallback string) error {
	mapped := s.sessions.handle(ctx, err)
	s.notifier.Notify(Notification{Kind: NotificationError, Message: DisplayMessage(mapped, fallback)})
	return mapped
}

func (s *clientNoteService) restore(snapshot []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = slices.DeleteFunc(snapshot, func(n models.Note) bool {
		_, gone := s.removed[n.ID]
		return gone
	})
}

// index must be called with mu held.
func (s *clientNoteService) index(noteID string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == noteID })
}

// replace must be called with mu held.
func (s *clientNoteService) replace(note models.Note) {
	if idx := s.index(note.ID); idx >= 0 {
		s.notes[idx] = note.Clone()
	}
}

func checkForm(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msgEnterTitle)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msgEnterContent)
	}
	return nil
}

func cloneNotes(notes []models.Note) []models.Note {
	if notes == nil {
		return []models.Note{}
	}
	out := make([]models.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
