package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed note payloads before they reach
// the wrapped NoteService, so validation always precedes any storage call.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, err
	}
	return v.inner.CreateNote(ctx, ownerID, input)
}

func (v *NoteValidationService) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return v.inner.GetNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, ownerID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, err
	}
	return v.inner.UpdateNote(ctx, ownerID, noteID, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	return v.inner.DeleteNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
