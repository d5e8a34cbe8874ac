package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.Format())
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn), WithPretty(false))
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("expected messages below warn to be filtered, got: %s", output)
	}

	if !strings.Contains(output, "warn message") {
		t.Errorf("expected warn message, got: %s", output)
	}
}

func TestLogger_Trace_UsesTraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("fine detail")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level, got: %s", buf.String())
	}
}

func TestLogger_Make_WithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("json message", slog.String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected valid JSON, got %q: %v", buf.String(), err)
	}

	if record["msg"] != "json message" || record["key"] != "value" {
		t.Errorf("unexpected record: %v", record)
	}

	if record["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", record["level"])
	}
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("with caller")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller to reference log_test.go, got: %s", buf.String())
	}
}

func TestLogger_Wrap_DoesNotMutateReceiver(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelInfo))
	wrapped := base.Wrap(WithLevel(LevelError))

	if base.Level() != LevelInfo {
		t.Errorf("base level changed to %v", base.Level())
	}

	if wrapped.Level() != LevelError {
		t.Errorf("wrapped level = %v, want %v", wrapped.Level(), LevelError)
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false)).With(slog.String("component", "build"))
	logger.Info("message")

	if !strings.Contains(buf.String(), "component=build") {
		t.Errorf("expected attribute in output, got: %s", buf.String())
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var logger Logger

	logger.Info("ignored")
	logger.ErrorContext(context.Background(), "ignored")

	if logger.With(slog.Int("n", 1)).Logger != nil {
		t.Error("expected zero value logger to stay zero")
	}

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("expected zero value logger to report defaults")
	}
}

func TestLogger_ContextMethods_LogSuccessfully(t *testing.T) {
	var buf bytes.Buffer

	ctx := context.Background()
	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))

	tests := []struct {
		name string
		fn   func(context.Context, string, ...slog.Attr)
		want string
	}{
		{"trace", logger.TraceContext, "TRACE"},
		{"debug", logger.DebugContext, "DEBUG"},
		{"info", logger.InfoContext, "INFO"},
		{"warn", logger.WarnContext, "WARN"},
		{"error", logger.ErrorContext, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(ctx, tt.name+" message")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got: %s", tt.want, buf.String())
			}
		})
	}
}
