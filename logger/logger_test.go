package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	return m
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "debug", Format: "json"}, "xapi")

	l.Debug("redirect", Fields("status", 302, "location", "/next"))
	m := decodeLine(t, &buf)

	if m["message"] != "redirect" {
		t.Errorf("message = %v", m["message"])
	}
	if m["level"] != "debug" {
		t.Errorf("level = %v", m["level"])
	}
	if m[FieldComponent] != "xapi" {
		t.Errorf("component = %v", m[FieldComponent])
	}
	if m["status"] != float64(302) || m["location"] != "/next" {
		t.Errorf("fields missing: %v", m)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "warn", Format: "json"}, "")

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
	if l.DebugEnabled() {
		t.Error("debug should be disabled at warn level")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "loud", Format: "json"}, "")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	if l.DebugEnabled() {
		t.Error("nop logger should not enable debug")
	}
	// Must not panic.
	l.Debug("x", Fields("a", 1))
	l.Error("x")
	l.WithComponent("c").WithFields(Fields("k", "v")).Info("x")
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, &Config{Level: "info", Format: "json"}, "xapi")

	base.WithComponent("redirect").
		WithFields(map[string]any{"hop": 2}).
		WithError(errors.New("boom")).
		Error("failed")
	m := decodeLine(t, &buf)

	if m[FieldComponent] != "redirect" {
		t.Errorf("component = %v", m[FieldComponent])
	}
	if m["hop"] != float64(2) {
		t.Errorf("hop = %v", m["hop"])
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v", m["error"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "info", Format: "console", NoColor: true}, "")
	l.Info("hello", Fields("status", 200))

	out := buf.String()
	if !strings.Contains(out, "[INF]") || !strings.Contains(out, "hello") || !strings.Contains(out, "status:200") {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Output != "stderr" {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	custom := Config{Level: "debug", Format: "console", Output: "stdout"}
	custom.ApplyDefaults()
	if custom.Level != "debug" || custom.Format != "console" || custom.Output != "stdout" {
		t.Errorf("defaults overwrote explicit values: %+v", custom)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stderr"}, false},
		{"disabled", Config{Level: "disabled", Format: "console", Output: "stdout"}, false},
		{"bad level", Config{Level: "verbose", Format: "json", Output: "stderr"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "skipped", "dangling")
	if len(m) != 2 || m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
	if ErrorFields(errors.New("x"))[FieldError] != "x" {
		t.Error("ErrorFields should carry the message")
	}
	if DurationFields(1500*time.Millisecond)[FieldDuration] != int64(1500) {
		t.Error("DurationFields should carry milliseconds")
	}
}
