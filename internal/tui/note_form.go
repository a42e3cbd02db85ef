package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldContent
	formFieldTags
	formFieldCount
)

// noteForm edits a note's title, content and tags. noteID is empty when a
// new note is being written.
type noteForm struct {
	title   textinput.Model
	content textarea.Model
	tags    textinput.Model

	focus      int
	noteID     string
	submitting bool
	errMsg     string
}

func newNoteForm() noteForm {
	title := newTextField("Title", 256, false)
	title.Width = 60

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetWidth(64)
	content.SetHeight(10)

	tags := newTextField("work, ideas", 512, false)
	tags.Width = 60

	return noteForm{title: title, content: content, tags: tags}
}

// open fills the form from note, or clears it when note is nil.
func (f *noteForm) open(note *models.Note) tea.Cmd {
	f.noteID = ""
	f.submitting = false
	f.errMsg = ""
	f.title.SetValue("")
	f.content.SetValue("")
	f.tags.SetValue("")

	if note != nil {
		f.noteID = note.ID
		f.title.SetValue(note.Title)
		f.content.SetValue(note.Content)
		f.tags.SetValue(strings.Join(note.Tags, ", "))
		f.title.CursorEnd()
		f.tags.CursorEnd()
	}

	return f.focusOn(formFieldTitle)
}

func (f *noteForm) editing() bool {
	return f.noteID != ""
}

func (f *noteForm) focusOn(field int) tea.Cmd {
	f.title.Blur()
	f.content.Blur()
	f.tags.Blur()
	f.focus = field

	switch field {
	case formFieldContent:
		return f.content.Focus()
	case formFieldTags:
		return f.tags.Focus()
	default:
		return f.title.Focus()
	}
}

func (f *noteForm) next() tea.Cmd {
	return f.focusOn((f.focus + 1) % formFieldCount)
}

func (f *noteForm) prev() tea.Cmd {
	return f.focusOn((f.focus - 1 + formFieldCount) % formFieldCount)
}

func (f *noteForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case formFieldContent:
		f.content, cmd = f.content.Update(msg)
	case formFieldTags:
		f.tags, cmd = f.tags.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}

func (f *noteForm) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:   strings.TrimSpace(f.title.Value()),
		Content: f.content.Value(),
		Tags:    parseTags(f.tags.Value()),
	}
}

// update always carries tags so clearing the field clears them on the server.
func (f *noteForm) noteUpdate() models.NoteUpdate {
	return models.NoteUpdate{
		Title:   strings.TrimSpace(f.title.Value()),
		Content: f.content.Value(),
		Tags:    parseTags(f.tags.Value()),
	}
}

func (f *noteForm) view() string {
	var b strings.Builder

	b.WriteString("Title\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\nContent\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\nTags (comma separated)\n")
	b.WriteString(f.tags.View())
	b.WriteString("\n")

	action := "Add"
	if f.editing() {
		action = "Save"
	}
	writeFormFooter(&b, action, f.submitting, f.errMsg, "")

	return strings.TrimRight(b.String(), "\n")
}
