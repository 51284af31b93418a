// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var input models.NoteInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, models.NoteListResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), ownerID, noteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.NoteUpdate
	if err = decodeBody(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), ownerID, noteID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), ownerID, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}

// ownerFromRequest returns the id the auth middleware stored in the context.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return 0, false
	}
	return ownerID, true
}

func noteIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, noteIDParam)
	noteID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNoteID, validators.NewValidationError(
			"note_id",
			"Input should be a valid integer, unable to parse string as an integer",
			validators.TypeIntParsing,
		))
	}
	return noteID, nil
}

// decodeBody decodes the JSON request body into dst. A malformed body is
// reported as a validation error, an oversized one as is.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	err := utils.DecodeJSON(w, r, dst)
	if errors.Is(err, utils.ErrBodyTooLarge) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %w", err, validators.NewValidationError(
			"body", "JSON decode error", validators.TypeJSONInvalid))
	}
	return nil
}
