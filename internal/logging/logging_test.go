package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"loud", LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Errorf("LevelWarn.String() = %q", got)
	}
	if got := Level(42).String(); got != "UNKNOWN" {
		t.Errorf("Level(42).String() = %q", got)
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("output missing messages: %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("text output should carry the level: %q", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError)
	l.SetOutput(&buf)

	l.Info("before")
	l.SetLevel(LevelDebug)
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("info logged while level was error: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("debug not logged after SetLevel: %q", out)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(LevelInfo, ParseFormat("json"))
	l.SetOutput(&buf)

	l.Info("converted %d pairs", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "converted 3 pairs" {
		t.Errorf("msg = %v", rec["msg"])
	}
	if rec["level"] != "INFO" {
		t.Errorf("level = %v", rec["level"])
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	// Must not panic and must not be enabled for any level.
	l.Error("nothing")
	if l.Slog().Enabled(context.Background(), LevelError.slogLevel()) {
		t.Error("Discard logger should not be enabled for errors")
	}
}
