// Package logging configures the process-wide slog logger.
//
// Logs go to stderr unless a file path is configured; stdout is reserved for
// results and for the MCP protocol stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// EnvLevel names the environment variable that overrides the configured level.
const EnvLevel = "BBOX_LOG_LEVEL"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init installs a text slog handler as the default logger.
//
// path: log file path (append mode). If empty, logs go to stderr.
// level: "debug", "info", "warn" or "error"; anything else means info.
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = f
		w = f
	}

	slog.SetDefault(New(w, level))
	return nil
}

// New builds a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ResolveLevel picks the effective level: flag, then EnvLevel, then config.
func ResolveLevel(flagLevel, configLevel string) string {
	if flagLevel != "" {
		return flagLevel
	}
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}
	return configLevel
}

// ParseLevel maps a level name onto a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns base (or the default logger when base is nil) tagged with
// a fresh run ID, along with the ID itself.
func WithRun(base *slog.Logger) (*slog.Logger, string) {
	if base == nil {
		base = slog.Default()
	}
	id := uuid.NewString()
	return base.With("run", id), id
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
