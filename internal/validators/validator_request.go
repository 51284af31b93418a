package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates note and credential payloads using the
// `validate` struct tags declared on the models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.NoteInput, *models.NoteInput,
		models.NoteUpdate, *models.NoteUpdate,
		models.Credentials, *models.Credentials:
		return v.validateStruct(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, toFieldError(fe))
	}
	return result
}

func toFieldError(fe validator.FieldError) models.FieldError {
	out := models.FieldError{Field: fe.Field()}

	switch fe.Tag() {
	case "required":
		out.Message = "Field required"
		out.Type = TypeMissing
	case "min":
		out.Message = fmt.Sprintf("String should have at least %s characters", fe.Param())
		out.Type = TypeStringTooShort
	case "max":
		out.Message = fmt.Sprintf("String should have at most %s characters", fe.Param())
		out.Type = TypeStringTooLong
	default:
		out.Message = fmt.Sprintf("failed on the %q rule", fe.Tag())
		out.Type = TypeValueError
	}

	return out
}
