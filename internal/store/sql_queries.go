package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	createUser = `INSERT INTO users (id, full_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, full_name, email, password_hash, created_on;`

	findUserByEmail = `SELECT id, full_name, email, password_hash, created_on
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, full_name, email, password_hash, created_on
    FROM users
    WHERE id = $1;`
)

const notesTable = "notes"

var (
	// psql builds PostgreSQL queries with $N placeholders.
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	noteColumns = []string{"id", "user_id", "title", "content", "tags", "is_pinned", "seen", "created_on"}

	// noteOrder is the presentation order of every note list: pinned first,
	// newest first, then id byte-wise so ties are stable.
	noteOrder = []string{"is_pinned DESC", "created_on DESC", `id COLLATE "C" ASC`}

	// likeEscaper escapes LIKE metacharacters. PostgreSQL uses backslash as
	// the default escape character.
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

func ownedNote(userID, noteID string) squirrel.Eq {
	return squirrel.Eq{"id": noteID, "user_id": userID}
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(notesTable).
		Columns("id", "user_id", "title", "content", "tags", "is_pinned", "seen").
		Values(note.ID, note.UserID, note.Title, note.Content, tags, note.IsPinned, note.Seen).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildFindNoteQuery(userID, noteID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(ownedNote(userID, noteID)).
		ToSql()
}

func buildListNotesQuery(userID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(noteOrder...).
		ToSql()
}

// buildSearchNotesQuery matches query as a literal, case-insensitive
// substring of the title or the content.
func buildSearchNotesQuery(userID, query string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	return psql.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		}).
		OrderBy(noteOrder...).
		ToSql()
}

// buildUpdateNoteQuery sets only the non-nil fields of patch.
func buildUpdateNoteQuery(userID, noteID string, patch models.NotePatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrEmptyNotePatch
	}

	update := psql.Update(notesTable)

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		update = update.Set("content", *patch.Content)
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return "", nil, err
		}
		update = update.Set("tags", tags)
	}
	if patch.IsPinned != nil {
		update = update.Set("is_pinned", *patch.IsPinned)
	}
	if patch.Seen != nil {
		update = update.Set("seen", *patch.Seen)
	}

	return update.
		Where(ownedNote(userID, noteID)).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildDeleteNoteQuery(userID, noteID string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(ownedNote(userID, noteID)).
		ToSql()
}

// encodeTags serializes tags for the JSONB column. Nil becomes [].
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	return string(b), nil
}

func decodeTags(raw []byte) ([]string, error) {
	tags := []string{}
	if len(raw) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
