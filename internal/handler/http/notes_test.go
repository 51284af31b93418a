package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleNote(id, version int64) models.Note {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	content := "milk"
	return models.Note{
		NoteID:    id,
		Title:     "Shopping",
		Content:   &content,
		OwnerID:   1,
		Version:   version,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateNote_Created(t *testing.T) {
	router, m := newTestRouter(t)
	auth := m.authorized()

	m.notes.EXPECT().
		CreateNote(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, input models.NoteInput) (models.Note, error) {
			assert.Equal(t, "Shopping", input.Title)
			require.NotNil(t, input.Content)
			assert.Equal(t, "milk", *input.Content)
			return sampleNote(10, 1), nil
		})

	rr := doRequest(t, router, http.MethodPost, "/notes", `{"title":"Shopping","content":"milk"}`, auth...)

	require.Equal(t, http.StatusCreated, rr.Code)
	note := decodeResponse[models.Note](t, rr)
	assert.Equal(t, int64(10), note.NoteID)
	assert.Equal(t, int64(1), note.Version)
	assert.Equal(t, int64(1), note.OwnerID)
}

func TestCreateNote_NullContentIsSerialized(t *testing.T) {
	router, m := newTestRouter(t)
	auth := m.authorized()

	note := sampleNote(10, 1)
	note.Content = nil
	m.notes.EXPECT().CreateNote(gomock.Any(), int64(1), gomock.Any()).Return(note, nil)

	rr := doRequest(t, router, http.MethodPost, "/notes", `{"title":"Shopping"}`, auth...)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"content":null`)
}

func TestCreateNote_BodyTooLarge(t *testing.T) {
	router, m := newTestRouter(t)
	auth := m.authorized()

	// the note service must not be reached
	body := `{"title":"big","content":"` + strings.Repeat("x", 2<<20) + `"}`
	rr := doRequest(t, router, http.MethodPost, "/notes", body, auth...)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestBodyTooLarge, decodeResponse[models.ErrorResponse](t, rr).Detail)
}

func TestListNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes []models.Note
		want  string
	}{
		{name: "two notes", notes: []models.Note{sampleNote(1, 1), sampleNote(2, 3)}},
		{name: "no notes", notes: nil, want: `{"notes":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			auth := m.authorized()
			m.notes.EXPECT().ListNotes(gomock.Any(), int64(1)).Return(tt.notes, nil)

			rr := doRequest(t, router, http.MethodGet, "/notes", "", auth...)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.want != "" {
				assert.JSONEq(t, tt.want, rr.Body.String())
				return
			}
			resp := decodeResponse[models.NoteListResponse](t, rr)
			assert.Len(t, resp.Notes, len(tt.notes))
		})
	}
}

func TestGetNote(t *testing.T) {
	router, m := newTestRouter(t)
	auth := m.authorized()

	gomock.InOrder(
		m.notes.EXPECT().GetNote(gomock.Any(), int64(1), int64(5)).Return(sampleNote(5, 2), nil),
		m.notes.EXPECT().GetNote(gomock.Any(), int64(1), int64(6)).Return(models.Note{}, store.ErrNoteNotFound),
	)

	rr := doRequest(t, router, http.MethodGet, "/notes/5", "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), decodeResponse[models.Note](t, rr).Version)

	rr = doRequest(t, router, http.MethodGet, "/notes/6", "", auth...)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Note not found", decodeResponse[models.ErrorResponse](t, rr).Detail)
}

func TestNoteRoutes_InvalidID(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			router, m := newTestRouter(t)
			auth := m.authorized()

			rr := doRequest(t, router, method, "/notes/abc", `{"title":"t","version":1}`, auth...)

			require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			resp := decodeResponse[models.ErrorResponse](t, rr)
			assert.Equal(t, models.ErrorCodeValidation, resp.ErrorCode)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, validators.TypeIntParsing, resp.Errors[0].Type)
		})
	}
}

func TestUpdateNote(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "stale version", serviceErr: store.ErrVersionConflict, wantStatus: http.StatusConflict,
			wantDetail: "Note was modified by another process. Please refresh and try again."},
		{name: "missing note", serviceErr: store.ErrNoteNotFound, wantStatus: http.StatusNotFound, wantDetail: "Note not found"},
		{name: "missing version", serviceErr: validators.NewValidationError("version", "Field required", validators.TypeMissing),
			wantStatus: http.StatusUnprocessableEntity, wantDetail: "Validation error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			auth := m.authorized()

			m.notes.EXPECT().
				UpdateNote(gomock.Any(), int64(1), int64(5), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ int64, update models.NoteUpdate) (models.Note, error) {
					assert.Equal(t, "Groceries", update.Title)
					require.NotNil(t, update.Version)
					assert.Equal(t, int64(1), *update.Version)
					if tt.serviceErr != nil {
						return models.Note{}, tt.serviceErr
					}
					return sampleNote(5, 2), nil
				})

			rr := doRequest(t, router, http.MethodPut, "/notes/5", `{"title":"Groceries","content":null,"version":1}`, auth...)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeResponse[models.ErrorResponse](t, rr).Detail)
				return
			}
			assert.Equal(t, int64(2), decodeResponse[models.Note](t, rr).Version)
		})
	}
}

func TestDeleteNote(t *testing.T) {
	router, m := newTestRouter(t)
	auth := m.authorized()

	gomock.InOrder(
		m.notes.EXPECT().DeleteNote(gomock.Any(), int64(1), int64(5)).Return(nil),
		m.notes.EXPECT().DeleteNote(gomock.Any(), int64(1), int64(5)).Return(fmt.Errorf("wrapped: %w", store.ErrNoteNotFound)),
	)

	rr := doRequest(t, router, http.MethodDelete, "/notes/5", "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Note deleted successfully"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/notes/5", "", auth...)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNoteHandlers_WithoutAuthContext(t *testing.T) {
	h := &Handler{}

	rr := doRequest(t, http.HandlerFunc(h.listNotes), http.MethodGet, "/notes", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.ErrorCodeInternal, decodeResponse[models.ErrorResponse](t, rr).ErrorCode)
}
