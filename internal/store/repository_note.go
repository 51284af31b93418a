// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the database/sql implementation of [NoteRepository].
//
// Every query filters by owner_id, so a note that belongs to another user
// is never read, changed or reported as existing.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote inserts a note at version 1 with both timestamps set to now.
// An owner that does not exist (anymore) yields [ErrNoUserWasFound].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	createdAt := now()
	note.Version = models.InitialNoteVersion
	note.CreatedAt = createdAt
	note.UpdatedAt = createdAt

	query, args, err := r.db.buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.NoteID); err != nil {
		if r.db.violation(err) == ForeignKeyViolation {
			log.Warn().
				Str("func", "noteRepository.CreateNote").
				Int64("owner_id", note.OwnerID).
				Msg("owner does not exist")
			return models.Note{}, ErrNoUserWasFound
		}
		return models.Note{}, r.db.wrapExecError(ctx, "noteRepository.CreateNote", err)
	}

	log.Debug().
		Str("func", "noteRepository.CreateNote").
		Int64("note_id", note.NoteID).
		Int64("owner_id", note.OwnerID).
		Msg("note created")

	return note, nil
}

// GetNote returns the note with noteID if it is owned by ownerID.
func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return r.getNote(ctx, r.db, ownerID, noteID)
}

// ListNotes returns all notes of ownerID ordered by id, i.e. creation order.
// The result is an empty, non-nil slice when the owner has no notes.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapExecError(ctx, "noteRepository.ListNotes", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Int64("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies update within a single transaction:
//
//  1. a conditional UPDATE matching id, owner_id and the expected version,
//     which bumps the version by one;
//  2. if no row matched, a SELECT in the same transaction tells a missing
//     note ([ErrNoteNotFound]) from a stale version ([ErrVersionConflict]);
//  3. otherwise the updated row is read back and the transaction committed.
//
// Concurrent updates with the same expected version are serialized by the
// row lock the UPDATE takes; the loser matches zero rows and gets a conflict.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateNoteQuery(update, now())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	var updated models.Note
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return r.db.wrapExecError(ctx, "noteRepository.UpdateNote", execErr)
		}

		affected, execErr := result.RowsAffected()
		if execErr != nil {
			return r.db.wrapExecError(ctx, "noteRepository.UpdateNote", execErr)
		}

		if affected == 0 {
			return r.explainMissedUpdate(ctx, tx, update)
		}

		var getErr error
		updated, getErr = r.getNote(ctx, tx, update.OwnerID, update.NoteID)
		return getErr
	})
	if err != nil {
		return models.Note{}, err
	}

	log.Debug().
		Str("func", "noteRepository.UpdateNote").
		Int64("note_id", updated.NoteID).
		Int64("version", updated.Version).
		Msg("note updated")

	return updated, nil
}

// explainMissedUpdate is called when the conditional UPDATE matched no row.
func (r *noteRepository) explainMissedUpdate(ctx context.Context, tx *sql.Tx, update models.NoteUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildNoteVersionQuery(update.OwnerID, update.NoteID)
	if err != nil {
		return err
	}

	var storedVersion int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&storedVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", update.NoteID).
			Msg("note not found")
		return ErrNoteNotFound
	}
	if err != nil {
		return r.db.wrapExecError(ctx, "noteRepository.UpdateNote", err)
	}

	log.Warn().
		Str("func", "noteRepository.UpdateNote").
		Int64("note_id", update.NoteID).
		Int64("expected_version", update.ExpectedVersion()).
		Int64("db_version", storedVersion).
		Msg("version conflict")

	return fmt.Errorf("%w: expected version %d, stored version %d",
		ErrVersionConflict, update.ExpectedVersion(), storedVersion)
}

// DeleteNote removes the note. No version check is performed.
func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.wrapExecError(ctx, "noteRepository.DeleteNote", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapExecError(ctx, "noteRepository.DeleteNote", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) getNote(ctx context.Context, q queryer, ownerID, noteID int64) (models.Note, error) {
	query, args, err := r.db.buildGetNoteQuery(ownerID, noteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, r.db.wrapExecError(ctx, "noteRepository.GetNote", err)
	}

	return note, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Version,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, nil
}
