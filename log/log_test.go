package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.Format())
	}

	if logger.caller {
		t.Error("expected caller info disabled by default")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug), WithPretty(false))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger = Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}

		if result["msg"] != "test message" {
			t.Errorf("expected msg=test message, got %v", result["msg"])
		}

		if result["key"] != "value" {
			t.Errorf("expected key=value, got %v", result["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()

		if !strings.Contains(output, `msg="test message"`) {
			t.Errorf("expected text key=value encoding, got: %s", output)
		}

		if !strings.Contains(output, "key=value") {
			t.Errorf("expected attribute in output, got: %s", output)
		}
	})
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected source location in output, got: %s", buf.String())
	}

	buf.Reset()

	logger = Make(&buf, WithCaller(false), WithPretty(false))
	logger.Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Errorf("source location included when disabled: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger.Info("suppressed")

	if buf.Len() > 0 {
		t.Fatal("info message logged at Error level")
	}

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not apply new level")
	}

	// The original logger keeps its own configuration.
	if logger.Level() != LevelError {
		t.Errorf("original level changed to %v", logger.Level())
	}
}

func TestLogger_With_AttachesAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false)).
		With(slog.String("component", "resolver"))

	logger.Info("lookup")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["component"] != "resolver" {
		t.Errorf("expected component=resolver, got %v", result["component"])
	}
}

func TestLogger_ZeroValue_IsInert(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("discarded")
	logger.Error("discarded")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format, got %v", logger.Format())
	}
}

func TestLogger_TimeLayout_None_OmitsTime(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"), WithPretty(false))
	logger.Info("no clock")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if _, ok := result["time"]; ok {
		t.Errorf("expected time omitted, got: %s", buf.String())
	}
}

func TestLogger_PrettyText_ContainsMessage(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(true))
	logger.Info("pretty message", slog.Int("n", 3))

	output := buf.String()

	if !strings.Contains(output, "pretty message") {
		t.Errorf("expected message in pretty output, got: %s", output)
	}

	if !strings.Contains(output, "3") {
		t.Errorf("expected attribute value in pretty output, got: %s", output)
	}
}

func TestLogger_PrettyJSON_ContainsMessage(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(true))
	logger.Warn("pretty json")

	output := buf.String()

	if !strings.HasPrefix(output, "{") {
		t.Errorf("expected object-shaped output, got: %s", output)
	}

	if !strings.Contains(output, "pretty json") {
		t.Errorf("expected message in pretty output, got: %s", output)
	}
}
