// Package personnel keeps the reference list of people who send, receive,
// and complete documents.
package personnel

import (
	"context"
	"strings"

	"github.com/JaimeStill/file-flow/pkg/validation"
)

// Person is a named member of staff. Names are unique.
type Person struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Role *string `json:"role"`
}

// CreateCommand adds a person.
type CreateCommand struct {
	Name string `json:"name" validate:"notblank,max=255"`
	Role string `json:"role" validate:"max=255"`
}

func (c *CreateCommand) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Role = strings.TrimSpace(c.Role)
	return validation.Struct(c)
}

// System defines personnel operations.
type System interface {
	List(ctx context.Context) ([]Person, error)
	Create(ctx context.Context, cmd CreateCommand) (int64, error)
}
