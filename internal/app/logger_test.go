package app

import (
	"log/slog"
	"testing"

	"github.com/communova/communova-backend/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	cases := []config.LogConfig{
		{Level: "debug", Format: "json"},
		{Level: "info", Format: "text"},
		{Level: "warn", Format: ""},
		{Level: "bogus", Format: "json"},
	}

	for _, cfg := range cases {
		if logger := NewLogger(cfg); logger == nil {
			t.Errorf("NewLogger(%+v) returned nil", cfg)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"unknown", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
