package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNop(t *testing.T) {
	l := Nop()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Nop logger reports enabled")
	}
	l.With("k", "v").WithGroup("g").Info("dropped")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown", "frame", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written without verbose: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "frame=3") {
		t.Errorf("info record missing: %q", out)
	}

	buf.Reset()
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug record missing with verbose: %q", buf.String())
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) = nil")
	}
	l := Nop()
	if OrNop(l) != l {
		t.Error("OrNop changed a non-nil logger")
	}
}
