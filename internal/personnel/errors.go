package personnel

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/file-flow/pkg/validation"
)

var ErrDuplicate = errors.New("personnel name already exists")

// DuplicateNameError reports the name that collided.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Personnel '%s' already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicate
}

// MapHTTPStatus converts personnel errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
