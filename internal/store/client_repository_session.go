package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	saveSession = `
		INSERT INTO session (id, token, user_json, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			user_json = excluded.user_json,
			saved_at = excluded.saved_at;`

	loadSession = `SELECT token, user_json, saved_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository returns a [SessionRepository] over the client
// SQLite database.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	if _, err = l.DB.ExecContext(ctx, saveSession, session.Token, string(user), savedAt.UTC()); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session models.Session
		user    string
	)
	err := l.DB.QueryRowContext(ctx, loadSession).Scan(&session.Token, &user, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(user), &session.User); err != nil {
		return models.Session{}, fmt.Errorf("failed to decode session user: %w", err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
