// Package query builds parameterized PostgreSQL SELECT statements from a
// ProjectionMap using a fluent API with automatic placeholder numbering.
package query

import (
	"fmt"
	"strings"
	"time"
)

type condition struct {
	clause string
	args   []any
}

// SortField names a view field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	sort        []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder for the given projection. defaultSort applies
// when no explicit ordering is requested.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{
		projection:  projection,
		conditions:  make([]condition, 0),
		defaultSort: defaultSort,
	}
}

// BuildList returns an unbounded SELECT with the current conditions and ordering.
func (b *Builder) BuildList() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// OrderBy appends a sort field. Empty fields are ignored.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field != "" {
		b.sort = append(b.sort, SortField{Field: field, Descending: descending})
	}
	return b
}

// WhereContains adds a case-insensitive ILIKE condition. Nil or empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.where("%s ILIKE $%%d", field, "%"+escapeLike(*value)+"%")
}

// WhereEquals adds an equality condition. Nil values, including nil string
// pointers, are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	switch v := value.(type) {
	case nil:
		return b
	case *string:
		if v == nil {
			return b
		}
		value = *v
	}
	return b.where("%s = $%%d", field, value)
}

// WhereNotEquals adds an inequality condition.
func (b *Builder) WhereNotEquals(field string, value any) *Builder {
	return b.where("%s <> $%%d", field, value)
}

// WhereAtLeast adds an inclusive lower time bound. Nil values are ignored.
func (b *Builder) WhereAtLeast(field string, value *time.Time) *Builder {
	if value == nil {
		return b
	}
	return b.where("%s >= $%%d", field, *value)
}

// WhereBefore adds an exclusive upper time bound. Nil values are ignored.
func (b *Builder) WhereBefore(field string, value *time.Time) *Builder {
	if value == nil {
		return b
	}
	return b.where("%s < $%%d", field, *value)
}

func (b *Builder) where(format, field string, arg any) *Builder {
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf(format, col),
		args:   []any{arg},
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.sort
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = b.projection.Column(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
