package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	listTitleWidth = 32
	listTagsWidth  = 24
)

func (m *NotesModel) View() string {
	switch m.mode {
	case notesModeReader:
		return renderPage(m.header("NOTE"), m.readerView(), "esc: back │ e: edit │ p: pin │ d: delete │ c: copy")
	case notesModeForm:
		title := "NEW NOTE"
		if m.form.editing() {
			title = "EDIT NOTE"
		}
		return renderPage(m.header(title), m.form.view(), "tab: next field │ ctrl+s: save │ esc: cancel")
	case notesModeSearch:
		body := "Search\n[" + m.search.View() + "]"
		return renderPage(m.header("SEARCH"), body, "enter: search │ esc: cancel")
	case notesModeConfirmDelete:
		body := m.listView() + "\n\n" + errorStyle.Render(msgConfirmDelete)
		return renderPage(m.header("NOTES"), body, "y: delete │ n: cancel")
	default:
		hotKeys := "enter: open │ n: new │ e: edit │ d: delete │ p: pin │ /: search │ c: copy │ r: refresh │ l: log out │ q: quit"
		if m.notes.SearchActive() {
			hotKeys = "x: clear search │ " + hotKeys
		}
		return renderPage(m.header("NOTES"), m.listView(), hotKeys)
	}
}

func (m *NotesModel) header(title string) string {
	if m.user.FullName != "" {
		title += " · " + m.user.FullName
	}
	if m.pending > 0 {
		title += " " + m.spinner.View()
	}
	return title
}

func (m *NotesModel) listView() string {
	var b strings.Builder

	if m.notes.SearchActive() {
		b.WriteString(fmt.Sprintf("Results for %q\n\n", m.query))
	}

	if len(m.items) == 0 {
		if m.notes.SearchActive() {
			b.WriteString(msgSearchEmpty)
		} else {
			b.WriteString(msgNoNotesYet)
		}
	}

	for i, note := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(renderListRow(note))
		b.WriteString("\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderListRow(note models.Note) string {
	pin := " "
	if note.IsPinned {
		pin = pinnedStyle.Render("*")
	}

	title := fmt.Sprintf("%-*s", listTitleWidth, fitText(note.Title, listTitleWidth))
	if !note.Seen {
		title = unseenStyle.Render(title)
	}

	tags := fmt.Sprintf("%-*s", listTagsWidth, fitText(formatTags(note.Tags), listTagsWidth))

	return pin + " " + title + " │ " + tagStyle.Render(tags) + " │ " + formatDate(note.CreatedOn)
}

func (m *NotesModel) readerView() string {
	var b strings.Builder

	title := m.reader.Title
	if m.reader.IsPinned {
		title = pinnedStyle.Render("* ") + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(formatDate(m.reader.CreatedOn)))
	if tags := formatTags(m.reader.Tags); tags != "" {
		b.WriteString("  ")
		b.WriteString(tagStyle.Render(tags))
	}
	b.WriteString("\n\n")
	b.WriteString(m.reader.Content)

	out := readerBoxStyle.Render(b.String())
	if line := m.statusLine(); line != "" {
		out += "\n\n" + line
	}
	return out
}

func (m *NotesModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	switch m.statusKind {
	case service.NotificationError:
		return errorStyle.Render(m.status)
	case service.NotificationDeleted:
		return deletedStyle.Render(m.status)
	default:
		return successStyle.Render(m.status)
	}
}
