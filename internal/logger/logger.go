// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a slog.Logger from LOG_LEVEL and LOG_FORMAT, installs it as the
// slog default and returns it. Production defaults to JSON output.
func Setup(production bool) *slog.Logger {
	return setup(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), production)
}

func setup(w io.Writer, level, format string, production bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" && production {
		format = "json"
	}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(h)
	slog.SetDefault(l)
	return l
}

func parseLevel(s string) slog.Level {
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
