package models

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NoteListResponse wraps the notes of the current user.
type NoteListResponse struct {
	Notes []Note `json:"notes"`
}

// MessageResponse is a generic single-message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VersionResponse carries build metadata of the running binary.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse is the body of every error response.
//
// ErrorCode is set only for validation, database and internal errors.
// Errors is set only for validation errors.
type ErrorResponse struct {
	Detail    string       `json:"detail"`
	ErrorCode string       `json:"error_code,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// Error codes used in [ErrorResponse.ErrorCode].
const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeDatabase   = "DATABASE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
