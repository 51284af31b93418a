package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesClient constructs the HTTP implementation of [NotesClient].
// A base URL without a scheme is treated as http.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpNotesClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs credentials to /auth/register.
func (h *httpNotesClient) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&registered).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

// Login POSTs credentials to /auth/login and keeps the issued token for
// the following requests.
func (h *httpNotesClient) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpNotesClient) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetBody(input).
		SetResult(&note).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	var list models.NoteListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Notes == nil {
		list.Notes = []models.Note{}
	}
	return list.Notes, nil
}

func (h *httpNotesClient) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	var note models.Note

	resp, err := h.noteRequest(ctx, noteID).
		SetResult(&note).
		Get("/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesClient) UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	var note models.Note

	resp, err := h.noteRequest(ctx, noteID).
		SetBody(update).
		SetResult(&note).
		Put("/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Int64("note_id", noteID).Msg("update rejected")
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesClient) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.noteRequest(ctx, noteID).Delete("/notes/{noteID}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health reports the server status. A 503 answer is returned together with
// [ErrServiceUnavailable].
func (h *httpNotesClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

func (h *httpNotesClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpNotesClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpNotesClient) noteRequest(ctx context.Context, noteID int64) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("noteID", strconv.FormatInt(noteID, 10))
}
