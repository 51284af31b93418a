// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the core NoteService. It assumes its input has already
// been validated (see NoteValidationService) and delegates persistence,
// including the version check, to the NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	if ownerID <= 0 {
		return models.Note{}, ErrNoOwner
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		OwnerID: ownerID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("note_id", note.NoteID).Msg("note created")
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	if ownerID <= 0 {
		return models.Note{}, ErrNoOwner
	}

	note, err := s.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note %d: %w", noteID, err)
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	if ownerID <= 0 {
		return nil, ErrNoOwner
	}

	notes, err := s.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// UpdateNote pins the update to the path note and the authenticated owner,
// so neither can be redirected through the request body.
func (s *noteService) UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	if ownerID <= 0 {
		return models.Note{}, ErrNoOwner
	}

	update.OwnerID = ownerID
	update.NoteID = noteID

	note, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note %d: %w", noteID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("note_id", note.NoteID).
		Int64("version", note.Version).
		Msg("note updated")
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	if ownerID <= 0 {
		return ErrNoOwner
	}

	if err := s.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("error deleting note %d: %w", noteID, err)
	}

	logger.FromContext(ctx).Info().Int64("note_id", noteID).Msg("note deleted")
	return nil
}
