package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	wwwAuthenticateHeader    = "WWW-Authenticate"
	wwwAuthenticateChallenge = "Bearer"
)

// errorMapping binds the errors matching one of targets to a response.
type errorMapping struct {
	targets   []error
	status    int
	detail    string
	challenge bool
}

// errorMappings is checked in order; the first matching entry wins.
// Validation and storage errors are handled separately.
var errorMappings = []errorMapping{
	{
		targets: []error{store.ErrUsernameAlreadyExists},
		status:  http.StatusBadRequest,
		detail:  app.MsgUsernameAlreadyExists,
	},
	{
		targets: []error{store.ErrNoteNotFound},
		status:  http.StatusNotFound,
		detail:  app.MsgNoteNotFound,
	},
	{
		targets: []error{store.ErrVersionConflict},
		status:  http.StatusConflict,
		detail:  app.MsgVersionConflict,
	},
	{
		targets:   []error{service.ErrInvalidCredentials},
		status:    http.StatusUnauthorized,
		detail:    app.MsgIncorrectUsernameOrPassword,
		challenge: true,
	},
	{
		targets: []error{
			service.ErrUnauthorized,
			service.ErrTokenIsExpiredOrInvalid,
			utils.ErrInvalidAuthScheme,
			utils.ErrMalformedBearerHeader,
			store.ErrNoUserWasFound,
		},
		status:    http.StatusUnauthorized,
		detail:    app.MsgCouldNotValidateCredentials,
		challenge: true,
	},
	{
		targets: []error{utils.ErrBodyTooLarge},
		status:  http.StatusRequestEntityTooLarge,
		detail:  app.MsgRequestBodyTooLarge,
	},
	{
		targets: []error{ErrEmptyAuthorizationHeader},
		status:  http.StatusForbidden,
		detail:  app.MsgNotAuthenticated,
	},
}

// errorResponse converts err into the status code and body sent to the client.
// Unknown errors become an INTERNAL_ERROR so that no detail leaks.
func errorResponse(err error) (int, models.ErrorResponse, bool) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, models.ErrorResponse{
			Detail:    app.MsgValidation,
			ErrorCode: models.ErrorCodeValidation,
			Errors:    validationErr.Fields,
		}, false
	}

	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errors.Is(err, target) {
				return m.status, models.ErrorResponse{Detail: m.detail}, m.challenge
			}
		}
	}

	if store.IsStorageError(err) {
		return http.StatusInternalServerError, models.ErrorResponse{
			Detail:    app.MsgDatabaseError,
			ErrorCode: models.ErrorCodeDatabase,
		}, false
	}

	return http.StatusInternalServerError, models.ErrorResponse{
		Detail:    app.MsgInternalServerError,
		ErrorCode: models.ErrorCodeInternal,
	}, false
}

// writeError logs err with the request-scoped logger and writes the mapped
// response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body, challenge := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if challenge {
		w.Header().Set(wwwAuthenticateHeader, wwwAuthenticateChallenge)
	}
	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}
