package store

import (
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindNoteQuery_FiltersByOwner(t *testing.T) {
	query, args, err := buildFindNoteQuery("user-1", "note-1")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, user_id, title, content, tags, is_pinned, seen, created_on FROM notes WHERE id = $1 AND user_id = $2",
		query)
	assert.Equal(t, []any{"note-1", "user-1"}, args)
}

func TestBuildListNotesQuery_Order(t *testing.T) {
	query, args, err := buildListNotesQuery("user-1")

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT id, user_id, title, content, tags, is_pinned, seen, created_on FROM notes WHERE user_id = $1 ORDER BY is_pinned DESC, created_on DESC, id COLLATE "C" ASC`,
		query)
	assert.Equal(t, []any{"user-1"}, args)
}

func TestBuildSearchNotesQuery(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		pattern string
	}{
		{"plain", "NOTE", "%NOTE%"},
		{"percent is literal", "50%", `%50\%%`},
		{"underscore is literal", "a_b", `%a\_b%`},
		{"backslash is literal", `c:\tmp`, `%c:\\tmp%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchNotesQuery("user-1", tt.search)

			require.NoError(t, err)
			assert.Contains(t, query, "WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $3)")
			assert.Contains(t, query, "ORDER BY is_pinned DESC, created_on DESC")
			assert.Equal(t, []any{"user-1", tt.pattern, tt.pattern}, args)
		})
	}
}

func TestBuildUpdateNoteQuery_OnlyProvidedFields(t *testing.T) {
	title := "new title"
	pinned := true

	query, args, err := buildUpdateNoteQuery("user-1", "note-1", models.NotePatch{
		Title:    &title,
		IsPinned: &pinned,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE notes SET title = $1, is_pinned = $2 WHERE id = $3 AND user_id = $4 RETURNING id, user_id, title, content, tags, is_pinned, seen, created_on",
		query)
	assert.Equal(t, []any{"new title", true, "note-1", "user-1"}, args)
}

func TestBuildUpdateNoteQuery_EmptyTagsClear(t *testing.T) {
	tags := []string{}

	query, args, err := buildUpdateNoteQuery("user-1", "note-1", models.NotePatch{Tags: &tags})

	require.NoError(t, err)
	assert.Contains(t, query, "SET tags = $1")
	assert.Equal(t, "[]", args[0])
}

func TestBuildUpdateNoteQuery_EmptyPatch(t *testing.T) {
	_, _, err := buildUpdateNoteQuery("user-1", "note-1", models.NotePatch{})
	assert.ErrorIs(t, err, ErrEmptyNotePatch)
}

func TestBuildCreateNoteQuery(t *testing.T) {
	query, args, err := buildCreateNoteQuery(models.Note{
		ID:      "note-1",
		UserID:  "user-1",
		Title:   "t",
		Content: "c",
	})

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO notes (id,user_id,title,content,tags,is_pinned,seen) VALUES ($1,$2,$3,$4,$5,$6,$7)")
	assert.Contains(t, query, "RETURNING id, user_id")
	assert.Equal(t, []any{"note-1", "user-1", "t", "c", "[]", false, false}, args)
}

func TestBuildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery("user-1", "note-1")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{"note-1", "user-1"}, args)
}

func TestDecodeTags(t *testing.T) {
	tags, err := decodeTags([]byte(`["a","b","a"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, tags)

	tags, err = decodeTags(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	tags, err = decodeTags([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	_, err = decodeTags([]byte(`{`))
	assert.ErrorIs(t, err, ErrEncodingTags)
}
