package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth    *mock.MockAuthService
	notes   *mock.MockNoteService
	health  *mock.MockHealthService
	appInfo *mock.MockAppInfoService
}

var testServerConfig = config.Server{
	HTTPAddress:    "localhost:8080",
	RequestTimeout: 5 * time.Second,
	AllowedOrigins: []string{"http://localhost:3000"},
}

// newTestRouter builds the full router over mocked services.
func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		NoteService:    m.notes,
		HealthService:  m.health,
		AppInfoService: m.appInfo,
	}, testServerConfig, logger.Nop())

	return h.Init(), m
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&out), rr.Body.String())
	return out
}

func toJSON(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// authorized configures the auth mock to accept "valid-token" as user 1.
func (m testMocks) authorized() []string {
	m.auth.EXPECT().
		Authenticate(gomock.Any(), "valid-token").
		Return(models.User{UserID: 1, Username: "alice"}, nil).
		AnyTimes()
	return []string{"Authorization", "Bearer valid-token"}
}
