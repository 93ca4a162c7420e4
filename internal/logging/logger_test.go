package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level LogLevel) (*KindlingLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewLogger(&LoggerConfig{
		Level:  level,
		Format: "json",
		Output: buf,
	})
	return logger, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Info(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.Info(context.Background(), "descriptor updated", "name", "my-api")

	entry := decodeLine(t, buf)
	assert.Equal(t, "descriptor updated", entry["msg"])
	assert.Equal(t, "my-api", entry["name"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug(context.Background(), "not visible")
	logger.Info(context.Background(), "not visible either")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), errors.New("git missing"), "version control reset skipped")
	entry := decodeLine(t, buf)
	assert.Equal(t, "version control reset skipped", entry["msg"])
	assert.Equal(t, "git missing", entry["error"])
}

func TestLogger_WithComponent(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithComponent("setup").Info(context.Background(), "starting")

	entry := decodeLine(t, buf)
	assert.Equal(t, "setup", entry["component"])
}

func TestLogger_WithFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	scoped := logger.With("project", "my-api")
	scoped.Info(context.Background(), "readme regenerated", "path", "README.md")

	entry := decodeLine(t, buf)
	assert.Equal(t, "my-api", entry["project"])
	assert.Equal(t, "README.md", entry["path"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}
