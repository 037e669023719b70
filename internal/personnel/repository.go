package personnel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/file-flow/pkg/query"
	"github.com/JaimeStill/file-flow/pkg/repository"
)

var projection = query.NewProjectionMap("public", "personnel", "p").
	Project("id", "Id").
	Project("name", "Name").
	Project("role", "Role")

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "personnel"),
	}
}

func (r *repo) List(ctx context.Context) ([]Person, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "Name"}).BuildList()

	people, err := repository.QueryMany(ctx, r.db, q, args, scanPerson)
	if err != nil {
		return nil, fmt.Errorf("query personnel: %w", err)
	}
	return people, nil
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM public.personnel WHERE name = $1)`

const insertSQL = `INSERT INTO public.personnel (name, role) VALUES ($1, $2) RETURNING id`

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var role *string
	if cmd.Role != "" {
		role = &cmd.Role
	}

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		var exists bool
		if err := tx.QueryRowContext(ctx, existsSQL, cmd.Name).Scan(&exists); err != nil {
			return 0, err
		}
		if exists {
			return 0, &DuplicateNameError{Name: cmd.Name}
		}

		var id int64
		err := tx.QueryRowContext(ctx, insertSQL, cmd.Name, role).Scan(&id)
		return id, err
	})

	if err != nil {
		var dup *DuplicateNameError
		switch {
		case errors.As(err, &dup):
			return 0, err
		case repository.IsUniqueViolation(err):
			return 0, &DuplicateNameError{Name: cmd.Name}
		default:
			return 0, fmt.Errorf("create personnel: %w", err)
		}
	}

	r.logger.Info("personnel created", "id", id, "name", cmd.Name)
	return id, nil
}

func scanPerson(s repository.Scanner) (Person, error) {
	var p Person
	err := s.Scan(&p.ID, &p.Name, &p.Role)
	return p, err
}
