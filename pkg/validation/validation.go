// Package validation wraps go-playground/validator with field names taken
// from json tags and client-facing messages for the failure kinds the API uses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is the sentinel wrapped by every validation failure.
var ErrInvalid = errors.New("invalid input")

// Error describes the first failing field of a validated value.
type Error struct {
	Field   string
	Tag     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Required builds the error reported for a missing required field.
func Required(field string) *Error {
	return &Error{
		Field:   field,
		Tag:     "notblank",
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

// Invalid builds an error for a field whose value is malformed.
func Invalid(field, reason string) *Error {
	return &Error{
		Field:   field,
		Tag:     "invalid",
		Message: fmt.Sprintf("Invalid value for field %s: %s", field, reason),
	}
}

var defaultValidator = initValidator()

func initValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	registerValidation(v, "notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return !field.IsZero()
		}
		return strings.TrimSpace(field.String()) != ""
	})

	return v
}

func registerValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates s and returns the first failure as an *Error.
func Struct(s any) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return fromFieldError(fieldErrs[0])
}

func fromFieldError(fe validator.FieldError) *Error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return Required(field)
	case "datetime":
		return &Error{
			Field:   field,
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("Invalid date for field %s: expected format YYYY-MM-DD", field),
		}
	case "max":
		return &Error{
			Field:   field,
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("Field %s exceeds maximum length of %s", field, fe.Param()),
		}
	default:
		return &Error{
			Field:   field,
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("Invalid value for field %s", field),
		}
	}
}
