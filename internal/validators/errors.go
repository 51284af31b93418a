package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation error")
)

// Error types reported in [models.FieldError.Type].
const (
	TypeMissing        = "missing"
	TypeStringTooShort = "string_too_short"
	TypeStringTooLong  = "string_too_long"
	TypeJSONInvalid    = "json_invalid"
	TypeIntParsing     = "int_parsing"
	TypeValueError     = "value_error"
)

// ValidationError lists every rejected input field of a request.
type ValidationError struct {
	Fields []models.FieldError
}

// NewValidationError returns a ValidationError with a single field error.
func NewValidationError(field, message, errType string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message, Type: errType}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
