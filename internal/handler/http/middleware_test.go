package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		authErr       error
		wantStatus    int
		wantDetail    string
		wantChallenge bool
	}{
		{name: "no header", wantStatus: http.StatusForbidden, wantDetail: "Not authenticated"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "extra parts", header: "Bearer a b", wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "expired or forged", header: "Bearer bad", authErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "deleted user", header: "Bearer bad", authErr: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "database down", header: "Bearer bad", authErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantDetail: "Database error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.authErr != nil {
				m.auth.EXPECT().Authenticate(gomock.Any(), "bad").Return(models.User{}, tt.authErr)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rr := doRequest(t, router, http.MethodGet, "/notes", "", headers...)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeResponse[models.ErrorResponse](t, rr).Detail)
			if tt.wantChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuth_PutsUserIntoContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	authMock := mock.NewMockAuthService(ctrl)
	h := &Handler{services: &service.Services{AuthService: authMock}, logger: logger.Nop()}

	authMock.EXPECT().Authenticate(gomock.Any(), "tok").Return(models.User{UserID: 42, Username: "alice"}, nil)

	var gotID int64
	var gotName string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotName, _ = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "bearer tok")
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "alice", gotName)
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantGenerated bool
	}{
		{name: "trace ID from request header is reused", incoming: "my-custom-trace-id"},
		{name: "no trace ID in request, UUID generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{traceIDs: utils.NewUUIDGenerator(), logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			traceID := rr.Header().Get(traceIDHeader)
			if tt.wantGenerated {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.incoming, traceID)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, traceID, entry["trace_id"])
		})
	}
}

// ─────────────────────────────────────────────
// withLogging / responseWriter
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/notes?x=1", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	processTime, err := strconv.ParseFloat(rr.Header().Get(processTimeHeader), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, processTime, 0.0)

	for _, expected := range []string{`"method":"POST"`, `"uri":"/notes?x=1"`, `"status":201`, `"size":7`, `"duration":`} {
		assert.Contains(t, buf.String(), expected)
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.Empty(t, rr.Header().Get(processTimeHeader), "no start time, no header")
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("hello"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Same(t, rr, w.Unwrap())
}

// ─────────────────────────────────────────────
// withRecover
// ─────────────────────────────────────────────

func TestWithRecover(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something broke")
	})

	rr := httptest.NewRecorder()
	h.withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeResponse[models.ErrorResponse](t, rr)
	assert.Equal(t, "Internal server error", resp.Detail)
	assert.Equal(t, models.ErrorCodeInternal, resp.ErrorCode)
}

func TestWithRecover_AbortHandlerIsRepanicked(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
