// Package migrations embeds the database schema and applies it with goose.
// Each supported driver has its own directory of SQL migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported migration driver")
)

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

// Migrate applies all pending migrations for the given database/sql driver
// name ("pgx" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "pgx", "postgres":
		return string(goose.DialectPostgres), "postgres", nil
	case "sqlite3", "sqlite":
		return string(goose.DialectSQLite3), "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msgf(strings.TrimSuffix(format, "\n"), v...)
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msgf(strings.TrimSuffix(format, "\n"), v...)
}
