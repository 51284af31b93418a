// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InitialNoteVersion is the version every freshly created note starts at.
const InitialNoteVersion int64 = 1

// Note is a titled piece of text owned by exactly one user.
//
// Version starts at [InitialNoteVersion] and is incremented by exactly one
// on every successful update. A client must echo the version it last
// observed when updating; a stale version is rejected.
type Note struct {
	// NoteID is the unique identifier of the note. Immutable.
	NoteID int64 `json:"id"`

	// Title is a short non-empty heading, at most 200 characters.
	Title string `json:"title"`

	// Content is the optional body of the note. A nil value is stored as NULL
	// and serialized as JSON null.
	Content *string `json:"content"`

	// OwnerID references the user that owns the note. Immutable.
	OwnerID int64 `json:"owner_id"`

	// Version is the optimistic concurrency token of the note.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput is the payload accepted when creating a note.
type NoteInput struct {
	Title   string  `json:"title" validate:"min=1,max=200"`
	Content *string `json:"content"`
}

// NoteUpdate is the payload accepted when updating a note.
//
// Version is the version the client last observed. It is a pointer so that
// a missing field can be told apart from a zero value.
//
// NoteID and OwnerID are never read from the request body; they are set by
// the server from the path and the authenticated user.
type NoteUpdate struct {
	NoteID  int64   `json:"-"`
	OwnerID int64   `json:"-"`
	Title   string  `json:"title" validate:"min=1,max=200"`
	Content *string `json:"content"`
	Version *int64  `json:"version" validate:"required"`
}

// ExpectedVersion returns the version the update is conditioned on,
// or zero when it was not provided.
func (u NoteUpdate) ExpectedVersion() int64 {
	if u.Version == nil {
		return 0
	}
	return *u.Version
}
