// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users and notes on top of
// database/sql. PostgreSQL (pgx) and SQLite (go-sqlite3) are supported;
// SQL is built with squirrel so that the same repositories serve both.
package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns it with its assigned id.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when no user matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository persists notes. Every operation is scoped to an owner: a
// note owned by someone else behaves exactly like a missing one.
type NoteRepository interface {
	// CreateNote inserts note with version 1 and returns the stored note.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns [ErrNoteNotFound] if the note is absent or not owned.
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)

	// ListNotes returns the owner's notes in creation order.
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// UpdateNote replaces title and content if the stored version equals the
	// expected one, incrementing the version by one. The check and the write
	// are atomic. Fails with [ErrNoteNotFound] or [ErrVersionConflict].
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note regardless of its version.
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator interprets driver-specific errors.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// Violation reports which integrity constraint, if any, err violates.
	Violation(err error) ConstraintViolation
}
