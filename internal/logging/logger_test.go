package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerNotNil(t *testing.T) {
	if NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "v1"}) == nil {
		t.Fatalf("expected logger")
	}
	if NewLogger(Config{}) == nil {
		t.Fatalf("expected logger with defaults")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
	Info(WithIdentity(nil, "LAL-0211"), "msg")
}

func TestWithIdentity(t *testing.T) {
	if WithIdentity(nil, "LAL-0211") != nil {
		t.Fatalf("expected nil logger to stay nil")
	}
	logger := NewLogger(Config{})
	if WithIdentity(logger, "LAL-0211") == nil {
		t.Fatalf("expected keyed child logger")
	}
}
