package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Writer: &buf}).With(String("floor", "L1"))

	log.Debug(context.Background(), "route computed", Int("steps", 4), Err(errors.New("boom")))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if rec["msg"] != "route computed" || rec["floor"] != "L1" || rec["error"] != "boom" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["steps"] != float64(4) {
		t.Fatalf("steps = %v, want 4", rec["steps"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Writer: &buf})

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level filter broken: %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	if _, ok := FromContext(context.Background(), nil).(noopLogger); !ok {
		t.Fatal("expected noop fallback")
	}
	var buf bytes.Buffer
	l := New(Config{Writer: &buf})
	ctx := ContextWithLogger(context.Background(), l)
	if FromContext(ctx, Noop()) != l {
		t.Fatal("logger not recovered from context")
	}
	if Err(nil).Value != "" {
		t.Fatal("Err(nil) should be empty")
	}
}
