package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/file-flow/pkg/validation"
)

// Domain errors for document operations.
var (
	ErrNotFound         = errors.New("Document not found")
	ErrDuplicate        = errors.New("serial number already exists")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrAlreadyCompleted = errors.New("Document is already archived")
	ErrArchived         = errors.New("document is archived and accepts no further flow actions")
)

// DuplicateSerialError reports the serial number that collided.
type DuplicateSerialError struct {
	Serial string
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("Serial number '%s' already exists", e.Serial)
}

func (e *DuplicateSerialError) Unwrap() error {
	return ErrDuplicate
}

// AlreadyCompletedError carries the unchanged document of a repeated completion.
type AlreadyCompletedError struct {
	Document *Document
}

func (e *AlreadyCompletedError) Error() string {
	return ErrAlreadyCompleted.Error()
}

func (e *AlreadyCompletedError) Unwrap() error {
	return ErrAlreadyCompleted
}

func invalidCategory(c string) error {
	names := make([]string, len(Categories))
	for i, known := range Categories {
		names[i] = string(known)
	}
	return fmt.Errorf("%w '%s': must be one of %s", ErrInvalidCategory, c, strings.Join(names, ", "))
}

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, validation.ErrInvalid), errors.Is(err, ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrAlreadyCompleted), errors.Is(err, ErrArchived):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
