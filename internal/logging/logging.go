// Package logging configures the structured logger used on stderr.
package logging

import (
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Levels accepted by --log-level and the config file.
var Levels = []string{"debug", "info", "warn", "error"}

// New returns a text logger writing records at or above level to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level is one of Levels (or "warning").
func ValidLevel(level string) bool {
	level = strings.ToLower(level)
	if level == "warning" {
		return true
	}
	return slices.Contains(Levels, level)
}
