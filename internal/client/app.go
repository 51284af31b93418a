package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const usage = `usage: notes [global flags] <command> [args]

commands:
  register <username> <password>
  login <username> <password>
  create -title <title> [-content <text>]
  list
  get <id>
  update <id> -title <title> -version <n> [-content <text>]
  delete <id>
  health
  version
  client-version`

type command func(ctx context.Context, args []string) error

type App struct {
	notes  adapter.NotesClient
	out    io.Writer
	logger *logger.Logger

	commands map[string]command
}

func NewApp(notes adapter.NotesClient, out io.Writer, logger *logger.Logger) *App {
	a := &App{notes: notes, out: out, logger: logger}
	a.commands = map[string]command{
		"register": a.register,
		"login":    a.login,
		"create":   a.authed(a.create),
		"list":     a.authed(a.list),
		"get":      a.authed(a.get),
		"update":   a.authed(a.update),
		"delete":   a.authed(a.delete),
		"health":   a.health,
		"version":  a.version,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	return cmd(ctx, args[1:])
}

func (a *App) authed(next command) command {
	return func(ctx context.Context, args []string) error {
		if a.notes.Token() == "" {
			return ErrNoToken
		}
		return next(ctx, args)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	creds, err := credentialsFromArgs(args)
	if err != nil {
		return err
	}

	resp, err := a.notes.Register(ctx, creds)
	if err != nil {
		return err
	}
	return a.print(resp)
}

// login prints the token response; the access token is meant to be exported
// as NOTES_TOKEN for the following invocations.
func (a *App) login(ctx context.Context, args []string) error {
	creds, err := credentialsFromArgs(args)
	if err != nil {
		return err
	}

	resp, err := a.notes.Login(ctx, creds)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	note, err := a.notes.CreateNote(ctx, models.NoteInput{
		Title:   *title,
		Content: optionalFlag(fs, "content", *content),
	})
	if err != nil {
		return err
	}
	return a.print(note)
}

func (a *App) list(ctx context.Context, _ []string) error {
	notes, err := a.notes.ListNotes(ctx)
	if err != nil {
		return err
	}
	return a.print(models.NoteListResponse{Notes: notes})
}

func (a *App) get(ctx context.Context, args []string) error {
	noteID, _, err := noteIDFromArgs(args)
	if err != nil {
		return err
	}

	note, err := a.notes.GetNote(ctx, noteID)
	if err != nil {
		return err
	}
	return a.print(note)
}

func (a *App) update(ctx context.Context, args []string) error {
	noteID, rest, err := noteIDFromArgs(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("update")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content; omit to clear")
	version := fs.Int64("version", 0, "version the note was read at")
	if err = fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	update := models.NoteUpdate{
		Title:   *title,
		Content: optionalFlag(fs, "content", *content),
	}
	if isFlagSet(fs, "version") {
		update.Version = version
	}

	note, err := a.notes.UpdateNote(ctx, noteID, update)
	if errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w\nrun `get %d` to see the current version, then update again", err, noteID)
	}
	if err != nil {
		return err
	}
	return a.print(note)
}

func (a *App) delete(ctx context.Context, args []string) error {
	noteID, _, err := noteIDFromArgs(args)
	if err != nil {
		return err
	}

	if err = a.notes.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: fmt.Sprintf("note %d deleted", noteID)})
}

func (a *App) health(ctx context.Context, _ []string) error {
	resp, err := a.notes.Health(ctx)
	if err != nil && resp.Status == "" {
		return err
	}
	if printErr := a.print(resp); printErr != nil {
		return printErr
	}
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	resp, err := a.notes.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func credentialsFromArgs(args []string) (models.Credentials, error) {
	if len(args) != 2 {
		return models.Credentials{}, fmt.Errorf("%w: expected <username> <password>", ErrUsage)
	}
	return models.Credentials{Username: args[0], Password: args[1]}, nil
}

func noteIDFromArgs(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: expected <id>", ErrUsage)
	}

	noteID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: note id %q is not an integer", ErrUsage, args[0])
	}
	return noteID, args[1:], nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// optionalFlag returns nil for a flag that was not given on the command line.
func optionalFlag(fs *flag.FlagSet, name, value string) *string {
	if !isFlagSet(fs, name) {
		return nil
	}
	return &value
}
