package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestResolveLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")
	assert.Equal(t, "error", ResolveLevel("", "error"))
	assert.Equal(t, "debug", ResolveLevel("debug", "error"))

	t.Setenv(EnvLevel, "warn")
	assert.Equal(t, "warn", ResolveLevel("", "error"))
	assert.Equal(t, "debug", ResolveLevel("debug", "error"))
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger, id := WithRun(New(&buf, "info"))
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "run="+id)

	_, other := WithRun(nil)
	assert.NotEqual(t, id, other)
}

func TestInit_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "nested", "bbox.log")
	require.NoError(t, Init(path, "debug"))

	slog.Debug("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}
