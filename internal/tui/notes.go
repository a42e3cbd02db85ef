// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notesMode int

const (
	notesModeList notesMode = iota
	notesModeReader
	notesModeForm
	notesModeSearch
	notesModeConfirmDelete
)

const statusTTL = 2 * time.Second

const (
	msgLoggedOut      = "You have been logged out."
	msgCopied         = "Copied to clipboard"
	msgCopyFailed     = "Failed to copy to clipboard"
	msgNoteNotFound   = "Note not found"
	msgNothingToCopy  = "Nothing to copy"
	msgSearchEmpty    = "No notes match your search."
	msgNoNotesYet     = "No notes yet. Press n to write one."
	msgConfirmDelete  = "Delete this note? (y/n)"
	msgSessionExpired = "Your session has expired. Please log in again."
)

// NotesModel is the main page: the note list with a reader, an add/edit
// form, search and delete confirmation on top of it. The list itself is
// owned by [service.ClientNoteService] and re-read on every update so
// optimistic changes show up as soon as they are applied.
type NotesModel struct {
	ctx   context.Context
	notes service.ClientNoteService
	auth  service.ClientAuthService

	user  models.User
	items []models.Note
	idx   int

	mode notesMode
	// back is the mode to return to from the form or the delete prompt.
	back notesMode

	reader   models.Note
	deleting string
	form     noteForm
	search   textinput.Model
	query    string

	pending int
	spinner spinner.Model

	status     string
	statusKind service.NotificationKind
	statusSeq  int
}

func NewNotesModel(ctx context.Context, notes service.ClientNoteService, auth service.ClientAuthService) *NotesModel {
	search := newTextField("search title, content or tags", 256, false)

	return &NotesModel{
		ctx:     ctx,
		notes:   notes,
		auth:    auth,
		form:    newNoteForm(),
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init does nothing; the page starts loading on [sessionStartedMsg].
func (m *NotesModel) Init() tea.Cmd {
	return nil
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m *NotesModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		m.start(msg.session.User)
		return m.startPending(m.cmdRefresh())

	case spinner.TickMsg:
		if m.pending == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case notesLoadedMsg:
		m.donePending()
		return m.handleError(msg.err)

	case noteOpDoneMsg:
		m.donePending()
		return m.handleError(msg.err)

	case noteOpenedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoteNotFound) {
				m.mode = notesModeList
				return m.setStatus(service.NotificationError, msgNoteNotFound)
			}
			return m.handleError(msg.err)
		}
		if m.mode == notesModeReader && m.reader.ID == msg.note.ID {
			m.reader = msg.note
		}
		if msg.markSeen {
			return m.cmdMarkSeen(msg.note.ID)
		}
		return nil

	case noteSeenMsg:
		return m.handleError(msg.err)

	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if isSessionEnd(msg.err) {
				return m.cmdEndSession(msgSessionExpired)
			}
			m.form.errMsg = humanizeError(msg.err, "")
			return nil
		}
		m.mode = m.back
		if m.mode == notesModeReader {
			m.reader = msg.note
		}
		m.items = m.notes.Notes()
		m.selectByID(msg.note.ID)
		return nil

	case notificationMsg:
		return m.setStatus(msg.Kind, msg.Message)

	case copiedMsg:
		if msg.err != nil {
			return m.setStatus(service.NotificationError, msgCopyFailed)
		}
		return m.setStatus(service.NotificationInfo, msgCopied)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return nil

	case tea.KeyMsg:
		switch m.mode {
		case notesModeReader:
			return m.updateReader(msg)
		case notesModeForm:
			return m.updateForm(msg)
		case notesModeSearch:
			return m.updateSearch(msg)
		case notesModeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	switch m.mode {
	case notesModeForm:
		return m.form.update(msg)
	case notesModeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *NotesModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.logout):
		return m.cmdLogout()
	case key.Matches(msg, keys.refresh):
		return m.startPending(m.cmdRefresh())
	case key.Matches(msg, keys.newNote):
		m.back = notesModeList
		m.mode = notesModeForm
		return m.form.open(nil)
	case key.Matches(msg, keys.search):
		m.mode = notesModeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m.search.Focus()
	case key.Matches(msg, keys.clearSearch):
		if !m.notes.SearchActive() {
			return nil
		}
		m.query = ""
		return m.startPending(m.cmdClearSearch())
	}

	note, ok := m.selected()
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.reader = note
		m.mode = notesModeReader
		return m.cmdOpen(note.ID, !note.Seen)
	case key.Matches(msg, keys.edit):
		m.back = notesModeList
		m.mode = notesModeForm
		return m.form.open(&note)
	case key.Matches(msg, keys.delete):
		m.confirmDelete(note.ID, notesModeList)
	case key.Matches(msg, keys.pin):
		return m.startPending(m.cmdTogglePin(note.ID))
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(note.Content)
	}
	return nil
}

func (m *NotesModel) updateReader(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.mode = notesModeList
	case key.Matches(msg, keys.edit):
		m.back = notesModeReader
		m.mode = notesModeForm
		note := m.reader
		return m.form.open(&note)
	case key.Matches(msg, keys.delete):
		m.confirmDelete(m.reader.ID, notesModeReader)
	case key.Matches(msg, keys.pin):
		return m.startPending(m.cmdTogglePin(m.reader.ID))
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(m.reader.Content)
	}
	return nil
}

func (m *NotesModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = m.back
		return nil
	case key.Matches(msg, keys.tab):
		return m.form.next()
	case key.Matches(msg, keys.backtab):
		return m.form.prev()
	case key.Matches(msg, keys.save),
		key.Matches(msg, keys.enter) && m.form.focus != formFieldContent:
		return m.submitForm()
	}
	return m.form.update(msg)
}

func (m *NotesModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.Blur()
		m.mode = notesModeList
		return nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = notesModeList
		query := strings.TrimSpace(m.search.Value())
		if query == "" {
			return nil
		}
		m.query = query
		m.idx = 0
		return m.startPending(m.cmdSearch(query))
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.deleting
		m.deleting = ""
		m.mode = notesModeList
		return m.startPending(m.cmdDelete(id))
	case key.Matches(msg, keys.no):
		m.deleting = ""
		m.mode = m.back
	}
	return nil
}

func (m *NotesModel) submitForm() tea.Cmd {
	if m.form.submitting {
		return nil
	}
	m.form.errMsg = ""
	m.form.submitting = true

	if m.form.editing() {
		return m.cmdEdit(m.form.noteID, m.form.noteUpdate())
	}
	return m.cmdAdd(m.form.draft())
}

func (m *NotesModel) confirmDelete(noteID string, back notesMode) {
	m.deleting = noteID
	m.back = back
	m.mode = notesModeConfirmDelete
}

func (m *NotesModel) start(user models.User) {
	m.user = user
	m.items = nil
	m.idx = 0
	m.mode = notesModeList
	m.query = ""
	m.status = ""
	m.pending = 0
}

// sync re-reads the list from the service and keeps the cursor and the
// reader pointing at live notes.
func (m *NotesModel) sync() {
	var selectedID string
	if note, ok := m.selected(); ok {
		selectedID = note.ID
	}

	m.items = m.notes.Notes()

	if selectedID != "" {
		m.selectByID(selectedID)
	}
	if m.idx >= len(m.items) {
		m.idx = max(len(m.items)-1, 0)
	}

	if m.mode == notesModeReader {
		i := slices.IndexFunc(m.items, func(n models.Note) bool { return n.ID == m.reader.ID })
		if i < 0 {
			m.mode = notesModeList
			return
		}
		m.reader = m.items[i]
	}
}

func (m *NotesModel) selected() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *NotesModel) selectByID(id string) {
	if i := slices.IndexFunc(m.items, func(n models.Note) bool { return n.ID == id }); i >= 0 {
		m.idx = i
	}
}

func (m *NotesModel) startPending(cmd tea.Cmd) tea.Cmd {
	m.pending++
	if m.pending == 1 {
		return tea.Batch(m.spinner.Tick, cmd)
	}
	return cmd
}

func (m *NotesModel) donePending() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *NotesModel) setStatus(kind service.NotificationKind, text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusKind = kind
	return cmdClearStatus(m.statusSeq)
}

// handleError ends the session when the server refused the token. Other
// failures were already reported through the notifier.
func (m *NotesModel) handleError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if isSessionEnd(err) {
		return m.cmdEndSession(msgSessionExpired)
	}
	return nil
}

func isSessionEnd(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotLoggedIn)
}

func (m *NotesModel) cmdRefresh() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return notesLoadedMsg{err: notes.Refresh(ctx)}
	}
}

func (m *NotesModel) cmdSearch(query string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return noteOpDoneMsg{err: notes.Search(ctx, query)}
	}
}

func (m *NotesModel) cmdClearSearch() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return notesLoadedMsg{err: notes.ClearSearch(ctx)}
	}
}

func (m *NotesModel) cmdOpen(noteID string, markSeen bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Open(ctx, noteID)
		return noteOpenedMsg{note: note, err: err, markSeen: markSeen}
	}
}

func (m *NotesModel) cmdMarkSeen(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return noteSeenMsg{err: notes.MarkSeen(ctx, noteID)}
	}
}

func (m *NotesModel) cmdAdd(draft models.NoteDraft) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Add(ctx, draft)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m *NotesModel) cmdEdit(noteID string, update models.NoteUpdate) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Edit(ctx, noteID, update)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m *NotesModel) cmdDelete(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return noteOpDoneMsg{err: notes.Delete(ctx, noteID)}
	}
}

func (m *NotesModel) cmdTogglePin(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return noteOpDoneMsg{err: notes.TogglePin(ctx, noteID)}
	}
}

func (m *NotesModel) cmdLogout() tea.Cmd {
	ctx, auth, notes := m.ctx, m.auth, m.notes
	return func() tea.Msg {
		// the local session is gone even if removing it from disk failed
		_ = auth.Logout(ctx)
		notes.Reset()
		return loggedOutMsg{reason: msgLoggedOut}
	}
}

func (m *NotesModel) cmdEndSession(reason string) tea.Cmd {
	notes := m.notes
	return func() tea.Msg {
		notes.Reset()
		return loggedOutMsg{reason: reason}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(text) == "" {
			return notificationMsg{Kind: service.NotificationInfo, Message: msgNothingToCopy}
		}
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
