package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input       string
		expected    LogLevel
		expectError bool
	}{
		{input: "debug", expected: DebugLevel},
		{input: "INFO", expected: InfoLevel},
		{input: " warn ", expected: WarnLevel},
		{input: "error", expected: ErrorLevel},
		{input: "verbose", expected: ErrorLevel, expectError: true},
		{input: "", expected: ErrorLevel, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectError && err == nil {
				t.Fatalf("Expected error for %q", tt.input)
			}
			if !tt.expectError && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, ErrorLevel)

	// At ERROR level only Error messages should appear
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("Debug message should not appear at error level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should not appear at error level")
	}
	if strings.Contains(output, "warn message") {
		t.Error("Warn message should not appear at error level")
	}
	if !strings.Contains(output, "[ERROR]") || !strings.Contains(output, "error message") {
		t.Errorf("Error message should appear at error level, got: %s", output)
	}
}

func TestInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, InfoLevel)

	logger.Debug("debug message")
	logger.Info("running %s %s", "widget", "help")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("Debug message should not appear at info level")
	}
	if !strings.Contains(output, "[INFO]") || !strings.Contains(output, "running widget help") {
		t.Errorf("Expected formatted info message, got: %s", output)
	}
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDebugLogger(&buf)

	logger.Debug("parsed %d commands", 3)

	if !strings.Contains(buf.String(), "[DEBUG]") || !strings.Contains(buf.String(), "parsed 3 commands") {
		t.Errorf("Expected debug message, got: %s", buf.String())
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, InfoLevel)

	tick := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	logger.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	if err := logger.TimedOperation("generation", func() error { return nil }); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "starting generation") {
		t.Errorf("Missing start message: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "generation completed in 1s") {
		t.Errorf("Missing completion message: %s", buf.String())
	}

	buf.Reset()
	failure := errors.New("boom")
	if err := logger.TimedOperation("generation", func() error { return failure }); !errors.Is(err, failure) {
		t.Fatalf("Expected wrapped failure, got %v", err)
	}
	if !strings.Contains(buf.String(), "generation failed after 1s: boom") {
		t.Errorf("Missing failure message: %s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Must not panic with no writer configured
	logger.Error("dropped")
	if logger.Level() != ErrorLevel {
		t.Errorf("Expected error level, got %v", logger.Level())
	}
}
