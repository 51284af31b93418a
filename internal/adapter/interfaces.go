// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes API.
//
// [NotesClient] hides the HTTP transport from the command-line client. Error
// responses are mapped to the sentinel values in errors.go so that callers can
// use [errors.Is]; in particular [ErrConflict] signals a stale note version
// which the user resolves by fetching the note again.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesClient talks to a notes API server.
type NotesClient interface {
	// SetToken stores the access token attached to all note requests.
	SetToken(token string)

	// Token returns the stored access token, or "" if none is set.
	Token() string

	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Login authenticates and stores the returned access token.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote replaces title and content if update.Version is still the
	// stored version, and returns [ErrConflict] otherwise.
	UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
