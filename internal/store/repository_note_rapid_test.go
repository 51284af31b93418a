package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"pgregory.net/rapid"
)

// TestSQLite_VersionProperty checks that a note's version only changes on a
// successful update and then grows by exactly one, whatever mix of fresh and
// stale versions clients send.
func TestSQLite_VersionProperty(t *testing.T) {
	db := newSQLiteTestDB(t)
	owner := createTestUser(t, db, "prop-owner")
	repo := NewNoteRepository(db, logger.Nop())
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		note, err := repo.CreateNote(ctx, models.Note{OwnerID: owner.UserID, Title: "prop"})
		if err != nil {
			rt.Fatalf("create: %v", err)
		}

		current := note.Version
		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for range steps {
			sent := rapid.Int64Range(0, current+2).Draw(rt, "version")
			title := rapid.StringMatching(`[a-z]{1,20}`).Draw(rt, "title")

			updated, err := repo.UpdateNote(ctx, models.NoteUpdate{
				NoteID:  note.NoteID,
				OwnerID: owner.UserID,
				Title:   title,
				Version: &sent,
			})

			switch {
			case sent == current:
				if err != nil {
					rt.Fatalf("update with current version %d failed: %v", current, err)
				}
				if updated.Version != current+1 {
					rt.Fatalf("expected version %d, got %d", current+1, updated.Version)
				}
				if updated.Title != title {
					rt.Fatalf("expected title %q, got %q", title, updated.Title)
				}
				current = updated.Version
			default:
				if !errors.Is(err, ErrVersionConflict) {
					rt.Fatalf("expected conflict for version %d (current %d), got %v", sent, current, err)
				}
			}

			stored, err := repo.GetNote(ctx, owner.UserID, note.NoteID)
			if err != nil {
				rt.Fatalf("get: %v", err)
			}
			if stored.Version != current {
				rt.Fatalf("stored version %d, tracked %d", stored.Version, current)
			}
		}
	})
}
