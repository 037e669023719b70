package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/file-flow/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "users", "u").
		Project("id", "Id").
		Project("name", "Name").
		Project("email", "Email").
		Project("created_at", "CreatedAt")
}

func TestProjectionMap(t *testing.T) {
	pm := newTestProjection()

	assert.Equal(t, "u", pm.Alias())
	assert.Equal(t, "public.users u", pm.Table())
	assert.Equal(t, "u.email", pm.Column("Email"))
	assert.Equal(t, "Unknown", pm.Column("Unknown"))
	assert.Equal(t, "u.id, u.name, u.email, u.created_at", pm.Columns())
	assert.Equal(t, []string{"u.id", "u.name", "u.email", "u.created_at"}, pm.ColumnList())
}

func TestBuilder_BuildList_NoConditions(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).BuildList()

	assert.Equal(t, "SELECT u.id, u.name, u.email, u.created_at FROM public.users u ORDER BY u.name ASC", sql)
	assert.Empty(t, args)
}

func TestBuilder_BuildList_NoSort(t *testing.T) {
	sql, _ := query.NewBuilder(newTestProjection()).BuildList()

	assert.NotContains(t, sql, "ORDER BY")
}

func TestBuilder_OrderBy_OverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		OrderBy("CreatedAt", true).
		OrderBy("Id", true).
		BuildList()

	assert.Contains(t, sql, "ORDER BY u.created_at DESC, u.id DESC")
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildSingle("Id", int64(7))

	assert.Contains(t, sql, "WHERE u.id = $1")
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuilder_WhereContains(t *testing.T) {
	name := "jo_n%"
	empty := ""

	sql, args := query.NewBuilder(newTestProjection()).
		WhereContains("Name", &name).
		WhereContains("Email", nil).
		WhereContains("Email", &empty).
		BuildList()

	assert.Contains(t, sql, "WHERE u.name ILIKE $1")
	assert.NotContains(t, sql, "u.email ILIKE")
	assert.Equal(t, []any{`%jo\_n\%%`}, args)
}

func TestBuilder_WhereEquals_IgnoresNil(t *testing.T) {
	var missing *string
	status := "archived"

	sql, args := query.NewBuilder(newTestProjection()).
		WhereEquals("Id", nil).
		WhereEquals("Email", missing).
		WhereEquals("Name", &status).
		BuildList()

	assert.Contains(t, sql, "WHERE u.name = $1")
	assert.Equal(t, []any{"archived"}, args)
}

func TestBuilder_MultipleConditions_NumbersParameters(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	name := "x"

	sql, args := query.NewBuilder(newTestProjection()).
		WhereContains("Name", &name).
		WhereAtLeast("CreatedAt", &from).
		WhereBefore("CreatedAt", &to).
		WhereNotEquals("Email", "none").
		BuildList()

	assert.Contains(t, sql, "u.name ILIKE $1 AND u.created_at >= $2 AND u.created_at < $3 AND u.email <> $4")
	assert.Len(t, args, 4)
	assert.Equal(t, from, args[1])
	assert.Equal(t, to, args[2])
}
