package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockNotesClient, *bytes.Buffer) {
	t.Helper()

	notes := mock.NewMockNotesClient(gomock.NewController(t))
	var out bytes.Buffer
	return NewApp(notes, &out, logger.Nop()), notes, &out
}

func ptr[T any](v T) *T { return &v }

func TestRun_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), nil)

	require.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage: notes")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"sync"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"sync"`)
}

func TestRun_Register(t *testing.T) {
	app, notes, out := newTestApp(t)
	notes.EXPECT().
		Register(gomock.Any(), models.Credentials{Username: "alice", Password: "secret123"}).
		Return(models.RegisterResponse{Message: "User created successfully", UserID: 1}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "alice", "secret123"}))

	var got models.RegisterResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, int64(1), got.UserID)
}

func TestRun_LoginUsage(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"login", "alice"})

	assert.ErrorIs(t, err, ErrUsage)
}

func TestRun_NoteCommandsNeedToken(t *testing.T) {
	for _, cmd := range []string{"create", "list", "get", "update", "delete"} {
		t.Run(cmd, func(t *testing.T) {
			app, notes, _ := newTestApp(t)
			notes.EXPECT().Token().Return("")

			assert.ErrorIs(t, app.Run(context.Background(), []string{cmd}), ErrNoToken)
		})
	}
}

func TestRun_Create(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input models.NoteInput
	}{
		{
			name:  "with content",
			args:  []string{"create", "-title", "Groceries", "-content", "milk"},
			input: models.NoteInput{Title: "Groceries", Content: ptr("milk")},
		},
		{
			name:  "empty content is kept",
			args:  []string{"create", "-title", "Groceries", "-content", ""},
			input: models.NoteInput{Title: "Groceries", Content: ptr("")},
		},
		{
			name:  "no content flag means null",
			args:  []string{"create", "-title", "Groceries"},
			input: models.NoteInput{Title: "Groceries"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, notes, _ := newTestApp(t)
			notes.EXPECT().Token().Return("tok")
			notes.EXPECT().CreateNote(gomock.Any(), tt.input).Return(models.Note{NoteID: 1, Title: tt.input.Title, Version: 1}, nil)

			assert.NoError(t, app.Run(context.Background(), tt.args))
		})
	}
}

func TestRun_List(t *testing.T) {
	app, notes, out := newTestApp(t)
	notes.EXPECT().Token().Return("tok")
	notes.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{{NoteID: 1, Title: "a", Version: 1}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	var got models.NoteListResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "a", got.Notes[0].Title)
}

func TestRun_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app, notes, _ := newTestApp(t)
		notes.EXPECT().Token().Return("tok")

		assert.ErrorIs(t, app.Run(context.Background(), []string{"get", "abc"}), ErrUsage)
	})

	t.Run("not found", func(t *testing.T) {
		app, notes, _ := newTestApp(t)
		notes.EXPECT().Token().Return("tok")
		notes.EXPECT().GetNote(gomock.Any(), int64(42)).Return(models.Note{}, fmt.Errorf("%w: Note not found", adapter.ErrNotFound))

		assert.ErrorIs(t, app.Run(context.Background(), []string{"get", "42"}), adapter.ErrNotFound)
	})
}

func TestRun_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, notes, _ := newTestApp(t)
		notes.EXPECT().Token().Return("tok")
		notes.EXPECT().
			UpdateNote(gomock.Any(), int64(5), models.NoteUpdate{Title: "new", Version: ptr(int64(2))}).
			Return(models.Note{NoteID: 5, Title: "new", Version: 3}, nil)

		assert.NoError(t, app.Run(context.Background(), []string{"update", "5", "-title", "new", "-version", "2"}))
	})

	t.Run("missing version is sent as null", func(t *testing.T) {
		app, notes, _ := newTestApp(t)
		notes.EXPECT().Token().Return("tok")
		notes.EXPECT().
			UpdateNote(gomock.Any(), int64(5), models.NoteUpdate{Title: "new", Content: ptr("x")}).
			Return(models.Note{}, fmt.Errorf("%w: Validation error", adapter.ErrValidation))

		assert.ErrorIs(t, app.Run(context.Background(), []string{"update", "5", "-title", "new", "-content", "x"}), adapter.ErrValidation)
	})

	t.Run("conflict adds a hint", func(t *testing.T) {
		app, notes, _ := newTestApp(t)
		notes.EXPECT().Token().Return("tok")
		notes.EXPECT().
			UpdateNote(gomock.Any(), int64(5), gomock.Any()).
			Return(models.Note{}, fmt.Errorf("%w: stale", adapter.ErrConflict))

		err := app.Run(context.Background(), []string{"update", "5", "-title", "new", "-version", "1"})

		require.ErrorIs(t, err, adapter.ErrConflict)
		assert.Contains(t, err.Error(), "get 5")
	})
}

func TestRun_Delete(t *testing.T) {
	app, notes, out := newTestApp(t)
	notes.EXPECT().Token().Return("tok")
	notes.EXPECT().DeleteNote(gomock.Any(), int64(9)).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "9"}))
	assert.Contains(t, out.String(), "note 9 deleted")
}

func TestRun_Health(t *testing.T) {
	t.Run("unhealthy server still prints its status", func(t *testing.T) {
		app, notes, out := newTestApp(t)
		notes.EXPECT().Health(gomock.Any()).Return(
			models.HealthResponse{Status: "unhealthy", Message: "Database is unreachable"},
			adapter.ErrServiceUnavailable,
		)

		err := app.Run(context.Background(), []string{"health"})

		require.ErrorIs(t, err, adapter.ErrServiceUnavailable)
		assert.Contains(t, out.String(), "unhealthy")
	})

	t.Run("unreachable server", func(t *testing.T) {
		app, notes, out := newTestApp(t)
		notes.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{}, fmt.Errorf("health request: dial tcp: refused"))

		require.Error(t, app.Run(context.Background(), []string{"health"}))
		assert.Empty(t, out.String())
	})
}

func TestRun_Version(t *testing.T) {
	app, notes, out := newTestApp(t)
	notes.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "v1", BuildDate: "N/A", BuildCommit: "N/A"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), `"version": "v1"`)
}
