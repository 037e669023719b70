package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/pkg/logging"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	require.NoError(t, cfg.Finalize(nil))

	assert.Equal(t, logging.LevelInfo, cfg.Level)
	assert.Equal(t, logging.FormatText, cfg.Format)
	assert.Equal(t, logging.OutputStdout, cfg.Output)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	require.NoError(t, cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}))

	assert.Equal(t, logging.LevelDebug, cfg.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Format)
}

func TestConfig_Invalid(t *testing.T) {
	tests := []logging.Config{
		{Level: "verbose"},
		{Format: "xml"},
		{Output: "file"},
	}
	for _, cfg := range tests {
		c := cfg
		assert.Error(t, c.Finalize(nil))
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	assert.Equal(t, logging.LevelInfo, cfg.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Format)
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &logging.Config{Level: logging.LevelWarn, Format: logging.FormatJSON}

	logger := logging.NewWithWriter(cfg, &buf)
	logger.Info("dropped")
	logger.Warn("kept", "serial", "DOC-1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "DOC-1", rec["serial"])
}

func TestLevel_ToSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.LevelDebug.ToSlogLevel())
	assert.Equal(t, slog.LevelError, logging.LevelError.ToSlogLevel())
	assert.Equal(t, slog.LevelInfo, logging.Level("unknown").ToSlogLevel())
}
