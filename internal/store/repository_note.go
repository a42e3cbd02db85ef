// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Queries are built with squirrel in sql_queries.go.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note models.Note
		tags []byte
	)

	if err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&tags,
		&note.IsPinned,
		&note.Seen,
		&note.CreatedOn,
	); err != nil {
		return models.Note{}, err
	}

	decoded, err := decodeTags(tags)
	if err != nil {
		return models.Note{}, err
	}
	note.Tags = decoded

	return note, nil
}

func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*noteRepository.CreateNote").
		Str("user_id", note.UserID).
		Str("note_id", note.ID).
		Logger()

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("classification", n.classify(err)).Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (n *noteRepository) FindNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*noteRepository.FindNote").
		Str("user_id", userID).
		Str("note_id", noteID).
		Logger()

	query, args, err := buildFindNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("classification", n.classify(err)).Msg("failed to find note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// UpdateNote applies patch in a single UPDATE ... RETURNING statement.
// Zero affected rows means the note does not exist for this owner.
func (n *noteRepository) UpdateNote(ctx context.Context, userID, noteID string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*noteRepository.UpdateNote").
		Str("user_id", userID).
		Str("note_id", noteID).
		Logger()

	query, args, err := buildUpdateNoteQuery(userID, noteID, patch)
	if errors.Is(err, ErrEmptyNotePatch) {
		return models.Note{}, err
	}
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("classification", n.classify(err)).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (n *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*noteRepository.DeleteNote").
		Str("user_id", userID).
		Str("note_id", noteID).
		Logger()

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("classification", n.classify(err)).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (n *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNotes(ctx, "*noteRepository.ListNotes", userID, query, args)
}

func (n *noteRepository) SearchNotes(ctx context.Context, userID, search string) ([]models.Note, error) {
	query, args, err := buildSearchNotesQuery(userID, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNotes(ctx, "*noteRepository.SearchNotes", userID, query, args)
}

func (n *noteRepository) queryNotes(ctx context.Context, funcName, userID, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx).With().
		Str("func", funcName).
		Str("user_id", userID).
		Logger()

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("classification", n.classify(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}
