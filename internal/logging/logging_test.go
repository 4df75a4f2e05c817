package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  Error  ", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.input); got != tc.want {
			t.Errorf("parseLevel(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	logger := New("debug")
	if logger == nil {
		t.Fatal("New returned nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug logger should enable debug records")
	}

	logger = New("error")
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("error logger should not enable info records")
	}
}
