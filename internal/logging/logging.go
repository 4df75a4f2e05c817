// Package logging constructs the process logger. Output goes to stderr
// because stdout carries the tool protocol's JSON-RPC stream.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a slog logger at the given level. Unknown levels fall
// back to info.
func New(level string) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
