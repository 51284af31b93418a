package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	notesTable = models.Note{}.TableName()

	userColumns = []string{"id", "username", "password_hash", "created_at"}
	noteColumns = []string{"id", "owner_id", "title", "content", "version", "created_at", "updated_at"}
)

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return toSQL(db.builder.
		Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id"))
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return toSQL(db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where))
}

func (db *DB) buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return toSQL(db.builder.
		Insert(notesTable).
		Columns("owner_id", "title", "content", "version", "created_at", "updated_at").
		Values(note.OwnerID, note.Title, note.Content, note.Version, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id"))
}

func (db *DB) buildGetNoteQuery(ownerID, noteID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID, "owner_id": ownerID}))
}

func (db *DB) buildListNotesQuery(ownerID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id ASC"))
}

// buildUpdateNoteQuery builds the conditional write of the optimistic
// locking protocol: the row is changed only while it still carries the
// version the client read.
func (db *DB) buildUpdateNoteQuery(update models.NoteUpdate, now time.Time) (string, []any, error) {
	return toSQL(db.builder.
		Update(notesTable).
		Set("title", update.Title).
		Set("content", update.Content).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"id": update.NoteID}).
		Where(sq.Eq{"owner_id": update.OwnerID}).
		Where(sq.Eq{"version": update.ExpectedVersion()}))
}

func (db *DB) buildNoteVersionQuery(ownerID, noteID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select("version").
		From(notesTable).
		Where(sq.Eq{"id": noteID, "owner_id": ownerID}))
}

func (db *DB) buildDeleteNoteQuery(ownerID, noteID int64) (string, []any, error) {
	return toSQL(db.builder.
		Delete(notesTable).
		Where(sq.Eq{"id": noteID, "owner_id": ownerID}))
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func toSQL(b sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
