package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/infrastructure"
	"github.com/JaimeStill/file-flow/pkg/lifecycle"
	"github.com/JaimeStill/file-flow/pkg/metrics"
)

type fakeDatabase struct {
	pingErr error
}

func (f fakeDatabase) Connection() *sql.DB { return nil }

func (f fakeDatabase) Start(*lifecycle.Coordinator) error { return nil }

func (f fakeDatabase) Ping(context.Context) error { return f.pingErr }

func newTestRouter(t *testing.T, db fakeDatabase) (http.Handler, *lifecycle.Coordinator) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Name = "fileflow"
	cfg.Database.User = "fileflow"
	require.NoError(t, cfg.Finalize())

	lc := lifecycle.New()
	infra := &infrastructure.Infrastructure{
		Lifecycle: lc,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Database:  db,
		Metrics:   metrics.New(&cfg.Metrics),
	}
	return buildRouter(infra, cfg), lc
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, fakeDatabase{})

	w := get(router, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Run("before startup", func(t *testing.T) {
		router, _ := newTestRouter(t, fakeDatabase{})

		assert.Equal(t, http.StatusServiceUnavailable, get(router, "/readyz").Code)
	})

	t.Run("ready", func(t *testing.T) {
		router, lc := newTestRouter(t, fakeDatabase{})
		lc.WaitForStartup()

		w := get(router, "/readyz")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("database unreachable", func(t *testing.T) {
		router, lc := newTestRouter(t, fakeDatabase{pingErr: errors.New("connection refused")})
		lc.WaitForStartup()

		assert.Equal(t, http.StatusServiceUnavailable, get(router, "/readyz").Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, fakeDatabase{})

	w := get(router, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
