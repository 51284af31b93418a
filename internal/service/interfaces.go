// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the notes server: account
// registration and login, token issuing and verification, and the note
// operations with optimistic concurrency control.
package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a raw bearer token to the user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// NoteService manages notes on behalf of an authenticated owner.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// UpdateNote replaces title and content when update.Version matches the
	// stored version and returns the note with its version incremented.
	UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}

type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
