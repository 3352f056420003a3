package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("levels below warn should be suppressed, got: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn message") {
		t.Errorf("warn message missing from output: %q", out)
	}
	if !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("error message missing from output: %q", out)
	}
}

func TestFormatting(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info(ctx, "formatted message: %s %d", "test", 123)

	if !strings.Contains(buf.String(), "formatted message: test 123") {
		t.Errorf("formatting not applied: %q", buf.String())
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}
