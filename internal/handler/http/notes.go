// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

const noteIDParam = "noteId"

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNotes(w, notes, app.MsgNotesRetrieved)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	notes, err := h.services.NoteService.SearchNotes(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNotes(w, notes, app.MsgSearchRetrieved)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	var draft models.NoteDraft
	if !decodeBody(w, r, &draft) {
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), userID, draft)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNote(w, note, app.MsgNoteAdded)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	var update models.NoteUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), userID, chi.URLParam(r, noteIDParam), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNote(w, note, app.MsgNoteUpdated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, chi.URLParam(r, noteIDParam)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgNoteDeleted}, http.StatusOK)
}

func (h *Handler) updateNotePinned(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	var req models.PinRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.services.NoteService.SetPinned(r.Context(), userID, chi.URLParam(r, noteIDParam), req.IsPinned)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNote(w, note, app.MsgNotePinUpdated)
}

// updateNoteSeen accepts any JSON value for "seen"; it is coerced with
// JSON truthiness.
func (h *Handler) updateNoteSeen(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	var req models.SeenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.services.NoteService.SetSeen(r.Context(), userID, chi.URLParam(r, noteIDParam), bool(req.Seen))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeNote(w, note, app.MsgNoteSeenUpdated)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

func writeNote(w http.ResponseWriter, note models.Note, message string) {
	utils.WriteJSON(w, models.NoteResponse{
		Response: models.Response{Message: message},
		Note:     &note,
	}, http.StatusOK)
}

func writeNotes(w http.ResponseWriter, notes []models.Note, message string) {
	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, models.NotesResponse{
		Response: models.Response{Message: message},
		Notes:    notes,
	}, http.StatusOK)
}
