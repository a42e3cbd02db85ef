package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages groups the server repositories over one shared connection pool.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	db *DB
}

var (
	storagesOnce sync.Once
	storages     *Storages
	storagesErr  error
)

// openServerDB connects and migrates. Replaced in tests.
var openServerDB = func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. The pool is opened at most once per process: concurrent and
// later calls get the same *Storages, or the error of the first attempt.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	storagesOnce.Do(func() {
		log.Info().Msg("creating new storages...")

		db, err := openServerDB(ctx, cfg, log)
		if err != nil {
			storagesErr = err
			return
		}
		storages = newStorages(db, log)
	})

	return storages, storagesErr
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}
}

// Close releases the connection pool. Safe to call more than once.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
