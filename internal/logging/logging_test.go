package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"anchorpoint-it.com/infopanel/internal/config"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log setting")
}

func TestNewLevel(t *testing.T) {
	log, err := New(config.LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewWritesJSONToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")

	log, err := New(config.LogConfig{Level: "debug", Format: "json", Path: path})
	require.NoError(t, err)
	log.Info("public ip resolved", zap.String("ip", "203.0.113.7"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "public ip resolved", entry["msg"])
	assert.Equal(t, "203.0.113.7", entry["ip"])
}

func TestNewQuietWithoutPath(t *testing.T) {
	log, err := NewQuiet(config.LogConfig{Level: "debug"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewToWritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewTo(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Warn("public ip lookup failed", zap.String("kind", "parse_error"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "parse_error", entry["kind"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewToRejectsUnknownLevel(t *testing.T) {
	_, err := NewTo(config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
}
