package log

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			result := WithLevel(tt.level)(c)

			if result.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, result.level)
			}
		})
	}
}

func TestConfig_WithCaller_SetsCaller(t *testing.T) {
	c := config{}

	if result := WithCaller(true)(c); !result.caller {
		t.Error("expected caller enabled")
	}

	if result := WithCaller(false)(c); result.caller {
		t.Error("expected caller disabled")
	}
}

func TestConfig_WithFormat_SetsFormat(t *testing.T) {
	c := config{}

	if result := WithFormat(FormatText)(c); result.format != FormatText {
		t.Errorf("expected format text, got %v", result.format)
	}

	if result := WithFormat(FormatJSON)(c); result.format != FormatJSON {
		t.Errorf("expected format json, got %v", result.format)
	}
}

func TestConfig_WithTimeLayout_FormatsTime(t *testing.T) {
	ref := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"named rfc3339", "RFC3339", "2024-06-15T10:30:00Z"},
		{"named kitchen", "Kitchen", "10:30AM"},
		{"literal layout", "2006-01-02", "2024-06-15"},
		{"empty disables", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})

			if got := c.formatTime(ref); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"bogus", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, expected %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String_IsLowercase(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if s := l.String(); s != strings.ToLower(s) {
			t.Errorf("expected lowercase level name, got %q", s)
		}
	}
}
