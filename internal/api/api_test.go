package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/internal/api"
	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/infrastructure"
	"github.com/JaimeStill/file-flow/pkg/lifecycle"
	"github.com/JaimeStill/file-flow/pkg/metrics"
	"github.com/JaimeStill/file-flow/pkg/middleware"
)

type mockDatabase struct {
	db *sql.DB
}

func (m mockDatabase) Connection() *sql.DB { return m.db }

func (m mockDatabase) Start(*lifecycle.Coordinator) error { return nil }

func (m mockDatabase) Ping(ctx context.Context) error { return m.db.PingContext(ctx) }

func newModule(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.Name = "fileflow"
	cfg.Database.User = "fileflow"
	cfg.Domain = "http://localhost:8080"
	require.NoError(t, cfg.Finalize())

	infra := &infrastructure.Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Database:  mockDatabase{db: db},
		Metrics:   metrics.New(&cfg.Metrics),
		Clock:     func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) },
	}

	m, err := api.NewModule(cfg, infra)
	require.NoError(t, err)
	return m.Handler(), mock
}

func TestModule_ServesOpenAPI(t *testing.T) {
	handler, _ := newModule(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Info    struct{ Title string }    `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Equal(t, "File Flow API", doc.Info.Title)
	for _, path := range []string{
		"/api/documents",
		"/api/documents/export",
		"/api/documents/{id}",
		"/api/documents/{id}/flow",
		"/api/documents/{id}/send",
		"/api/documents/{id}/receive",
		"/api/documents/{id}/complete",
		"/api/dashboard/due_recalls",
		"/api/dashboard/overdue_documents",
		"/api/dashboard/statistics",
		"/api/personnel",
	} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Paths["/api/documents"], "post")
	assert.Contains(t, doc.Paths["/api/personnel"], "get")
}

func TestModule_RoutesToDomain(t *testing.T) {
	handler, mock := newModule(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM public.personnel p ORDER BY p.name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}).AddRow(int64(1), "Alice", nil))

	req := httptest.NewRequest(http.MethodGet, "/personnel", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Header().Get(middleware.HeaderRequestID))
	assert.JSONEq(t, `[{"id":1,"name":"Alice","role":null}]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestModule_UnknownDocument(t *testing.T) {
	handler, mock := newModule(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Document not found"}`, w.Body.String())
}
