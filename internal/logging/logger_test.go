package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")
	logger.Info("sheet processed", "sheet", "esquema_vigente")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["sheet"] != "esquema_vigente" {
		t.Errorf("sheet = %v, want esquema_vigente", entry["sheet"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestWithRun(t *testing.T) {
	ctx, id := WithRun(context.Background())

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id %q is not a UUID: %v", id, err)
	}
	if got := RunID(ctx); got != id {
		t.Errorf("RunID() = %q, want %q", got, id)
	}
	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID() on bare context = %q, want empty", got)
	}
}

func TestFromContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "text"))
	defer slog.SetDefault(prev)

	ctx, id := WithRun(context.Background())
	WithFields(ctx, "sheet", "s1").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "run_id="+id) {
		t.Errorf("log line missing run_id: %q", out)
	}
	if !strings.Contains(out, "sheet=s1") {
		t.Errorf("log line missing extra field: %q", out)
	}
}
