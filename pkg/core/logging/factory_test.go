package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/pkg/core/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected tblog.Level
	}{
		{"trace", tblog.LevelTrace},
		{"debug", tblog.LevelDebug},
		{"info", tblog.LevelInfo},
		{"warn", tblog.LevelWarn},
		{"error", tblog.LevelError},
		{"bogus", tblog.LevelWarn},
		{"", tblog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "tbasic",
		Level:       "info",
		Format:      "json",
		Output:      &out,
	})

	if logger.GetLevel() != tblog.LevelInfo {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	logger.Debug("hidden")
	logger.Info("visible")

	s := out.String()
	if strings.Contains(s, "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(s, `"logger":"tbasic"`) || !strings.Contains(s, `"msg":"visible"`) {
		t.Errorf("unexpected output: %s", s)
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "error", Verbose: true, Output: &out})
	if logger.GetLevel() != tblog.LevelDebug {
		t.Errorf("verbose level = %v, want debug", logger.GetLevel())
	}

	trace := NewLogger(LoggerConfig{Level: "trace", Verbose: true, Output: &out})
	if trace.GetLevel() != tblog.LevelTrace {
		t.Error("verbose should not raise a lower level")
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "warn",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	logger.Warn("storage unavailable")

	if !strings.Contains(primary.String(), "storage unavailable") ||
		!strings.Contains(extra.String(), "storage unavailable") {
		t.Errorf("entry not written to every output: %q / %q", primary.String(), extra.String())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "info"
	cfg.General.LogFormat = "console"

	lc := FromConfig("tbasic", cfg, true)
	if lc.ServiceName != "tbasic" || lc.Level != "info" || lc.Format != "console" || !lc.Verbose {
		t.Errorf("FromConfig() = %+v", lc)
	}

	if lc := FromConfig("tbasic", nil, false); lc.Level != "warn" || lc.Format != "text" {
		t.Errorf("FromConfig(nil) = %+v", lc)
	}
}
