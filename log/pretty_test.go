package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler_WritesUnquotedPairs(t *testing.T) {
	var buf bytes.Buffer

	// A bytes.Buffer is not a terminal, so lipgloss renders without color.
	logger := Make(&buf, WithPretty(true), WithTimeLayout("none"))
	logger.Info("loaded data",
		slog.String("file", "site data.md"),
		slog.Int("keys", 12),
		slog.Bool("ok", true),
	)

	want := "INFO loaded data file=site data.md keys=12 ok=true\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("run", "preview"))
	logger.Logger.WithGroup("file").Info("scanned", slog.Int("placeholders", 3))

	got := buf.String()
	for _, want := range []string{"run=preview", "file.placeholders=3"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestPrettyHandler_ResolvesLogValuer(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))
	logger.Error("failed",
		slog.Any("error", errors.New("boom")),
		slog.Group("data", slog.String("path", "a.md")),
	)

	got := buf.String()
	for _, want := range []string{"failed", "error=boom", "data.path=a.md"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}
