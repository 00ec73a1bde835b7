package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be Info, got %s", cfg.Level)
	}

	if cfg.Pretty != false {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		testMsg  string
		contains string
	}{
		{
			name: "info_level",
			config: Config{
				Level:  LevelInfo,
				Pretty: false,
				Output: &bytes.Buffer{},
			},
			testMsg:  "Operation completed",
			contains: "Operation completed",
		},
		{
			name: "debug_level",
			config: Config{
				Level:  LevelDebug,
				Pretty: false,
				Output: &bytes.Buffer{},
			},
			testMsg:  "Waiting before next poll",
			contains: "Waiting before next poll",
		},
		{
			name: "warn_level",
			config: Config{
				Level:  LevelWarn,
				Pretty: false,
				Output: &bytes.Buffer{},
			},
			testMsg:  "Polling stopped by policy",
			contains: "Polling stopped by policy",
		},
		{
			name: "error_level",
			config: Config{
				Level:  LevelError,
				Pretty: false,
				Output: &bytes.Buffer{},
			},
			testMsg:  "Page fetch failed, sequence terminated",
			contains: "Page fetch failed, sequence terminated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.config.Output = buf

			logger := Setup(tt.config)

			// Test that logger writes to the configured output
			switch tt.config.Level {
			case LevelDebug:
				logger.Debug().Msg(tt.testMsg)
			case LevelInfo:
				logger.Info().Msg(tt.testMsg)
			case LevelWarn:
				logger.Warn().Msg(tt.testMsg)
			case LevelError:
				logger.Error().Msg(tt.testMsg)
			}

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, output)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel}, // Should default to Info
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			result := parseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: buf,
	})

	// The poller tags its events with the lro component.
	logger := NewLogger("lro")
	logger.Info().Int("attempts", 3).Msg("Operation completed")

	output := buf.String()
	if !strings.Contains(output, `"component":"lro"`) {
		t.Errorf("Expected output to contain the lro component field, got %q", output)
	}
	if !strings.Contains(output, "Operation completed") {
		t.Errorf("Expected output to contain 'Operation completed', got %q", output)
	}
	if !strings.Contains(output, `"attempts":3`) {
		t.Errorf("Expected output to contain the attempts field, got %q", output)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelWarn,
		Pretty: false,
		Output: buf,
	})

	logger := NewLogger("lro")

	// These should NOT appear (below warn level)
	logger.Debug().Msg("Waiting before next poll")
	logger.Info().Msg("Operation completed")

	// These SHOULD appear (warn level and above)
	logger.Warn().Msg("Polling stopped by policy")
	logger.Error().Msg("Context cancelled during poll backoff")

	output := buf.String()

	if strings.Contains(output, "Waiting before next poll") {
		t.Error("Debug message should be filtered out at Warn level")
	}
	if strings.Contains(output, "Operation completed") {
		t.Error("Info message should be filtered out at Warn level")
	}
	if !strings.Contains(output, "Polling stopped by policy") {
		t.Error("Warn message should be included at Warn level")
	}
	if !strings.Contains(output, "Context cancelled during poll backoff") {
		t.Error("Error message should be included at Warn level")
	}
}
