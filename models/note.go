// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Note is a single text note owned by one user.
type Note struct {
	// ID is assigned by the server at creation (UUIDv7).
	ID string `json:"id"`

	// UserID is the owner. Immutable.
	UserID string `json:"userId"`

	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`

	IsPinned bool `json:"isPinned"`
	Seen     bool `json:"seen"`

	// CreatedOn is assigned at creation and never changes.
	CreatedOn time.Time `json:"createdOn"`
}

// Clone returns a deep copy of the note, tags included.
func (n Note) Clone() Note {
	if n.Tags != nil {
		tags := make([]string, len(n.Tags))
		copy(tags, n.Tags)
		n.Tags = tags
	}
	return n
}

// NoteDraft is the payload used to create a note.
type NoteDraft struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// NoteUpdate is a partial update of a note.
//
// Empty Title and Content are treated as absent. Tags is absent when nil;
// an empty non-nil slice clears the tags. IsPinned is only applied when it
// points to true.
type NoteUpdate struct {
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned,omitempty"`
}

// HasChanges reports whether the update carries at least one of
// title, content or tags.
func (u NoteUpdate) HasChanges() bool {
	return u.Title != "" || u.Content != "" || u.Tags != nil
}

// PinRequest is the payload of the update-note-pinned endpoint.
type PinRequest struct {
	IsPinned bool `json:"isPinned"`
}

// SeenRequest is the payload of the update-note-seen endpoint.
// Seen accepts any JSON value and is coerced with Truthy.
type SeenRequest struct {
	Seen Truthy `json:"seen"`
}

// NotePatch is the set of column changes applied to a stored note.
// Nil fields are left untouched.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
	Seen     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPinned == nil && p.Seen == nil
}
