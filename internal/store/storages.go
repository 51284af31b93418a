package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups the server-side repositories into a single value that is
// handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	HealthChecker  HealthChecker

	db *DB
}

// NewStorages opens the configured database, applies pending migrations and
// wires every repository to the resulting pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Str("driver", db.Driver()).Msg("storages created")

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories to an already opened pool.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
		HealthChecker:  db,
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
