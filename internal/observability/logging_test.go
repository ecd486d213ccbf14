package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
)

func mustLevel(t *testing.T, s string) zapcore.Level {
	t.Helper()
	l, err := zapcore.ParseLevel(s)
	require.NoError(t, err)
	return l
}

func bufferLogger(t *testing.T, level, format string) (*zap.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := NewLoggerTo(config.LoggingConfig{Level: level, Format: format}, zapcore.AddSync(&buf))
	require.NoError(t, err)
	return logger, &buf
}

func TestNewLogger_Stderr(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLoggerTo_JSONEntry(t *testing.T) {
	logger, buf := bufferLogger(t, "info", "json")
	logger.Info("dice rolled", zap.String("notation", "1d20+5"), zap.Int("total", 17))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dice rolled", entry["msg"])
	assert.Equal(t, "1d20+5", entry["notation"])
	assert.EqualValues(t, 17, entry["total"])
	ts, ok := entry["ts"].(string)
	require.True(t, ok, "ts should be an ISO8601 string, got %T", entry["ts"])
	assert.Contains(t, ts, "T")
}

func TestNewLoggerTo_FiltersBelowLevel(t *testing.T) {
	logger, buf := bufferLogger(t, "warn", "json")
	logger.Info("slot expended")
	logger.Debug("concentration check")
	assert.Zero(t, buf.Len())

	logger.Warn("equip refused")
	assert.Contains(t, buf.String(), "equip refused")
}

func TestNewLoggerTo_ConsoleIncludesCaller(t *testing.T) {
	logger, buf := bufferLogger(t, "debug", "console")
	logger.Debug("character levelled up", zap.Int("level", 5))
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "character levelled up")
	assert.Contains(t, out, "logging_test.go")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "trace", Format: "json"})
	assert.ErrorContains(t, err, `parsing log level "trace"`)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestNewLogger_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := NewLogger(config.LoggingConfig{Level: level, Format: "json"})
		require.NoError(t, err, "level %q should be valid", level)
		assert.True(t, logger.Core().Enabled(mustLevel(t, level)))
	}
}
