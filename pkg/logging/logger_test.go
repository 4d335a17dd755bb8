package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"invalid", InfoLevel}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("text") != TextFormat {
		t.Error("ParseFormat(text) should be TextFormat")
	}
	if ParseFormat("json") != JSONFormat {
		t.Error("ParseFormat(json) should be JSONFormat")
	}
	if ParseFormat("yaml") != JSONFormat {
		t.Error("ParseFormat(yaml) should fall back to JSONFormat")
	}
}

func TestMachineFields(t *testing.T) {
	if f := Letter("in", 'q'); f.Key != "in" || f.Value != "q" {
		t.Errorf("Letter() = %+v", f)
	}
	if f := Rotor("VIII"); f.Key != "rotor" || f.Value != "VIII" {
		t.Errorf("Rotor() = %+v", f)
	}
	if f := Position(25); f.Key != "position" || f.Value != 25 {
		t.Errorf("Position() = %+v", f)
	}
	if f := Configuration("A I:0-II:0"); f.Key != "configuration" || f.Value != "A I:0-II:0" {
		t.Errorf("Configuration() = %+v", f)
	}
	if f := Error(nil); f.Value != nil {
		t.Errorf("Error(nil) = %+v", f)
	}
	if f := Error(errors.New("bad")); f.Value != "bad" {
		t.Errorf("Error() = %+v", f)
	}
}

func TestJSONLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("configuration set", Configuration("B I:0-II:0"), Count(2))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log line %q: %v", buf.String(), err)
	}

	if entry.Level != "INFO" {
		t.Errorf("Level = %q, want INFO", entry.Level)
	}
	if entry.Message != "configuration set" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Fields["configuration"] != "B I:0-II:0" {
		t.Errorf("configuration field = %v", entry.Fields["configuration"])
	}
	if entry.Fields["count"] != float64(2) {
		t.Errorf("count field = %v", entry.Fields["count"])
	}
}

func TestTextLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf, InfoLevel, TextFormat)

	logger.Warn("plugboard full", Count(13), Component("plugboard"))

	line := buf.String()
	if !strings.Contains(line, "WARN  plugboard full") {
		t.Errorf("missing level and message in %q", line)
	}
	if !strings.Contains(line, "component=plugboard count=13") {
		t.Errorf("fields not sorted or missing in %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line should end with newline")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below WARN, got %q", buf.String())
	}

	if logger.Enabled(DebugLevel) {
		t.Error("DebugLevel should not be enabled at WARN")
	}
	if !logger.Enabled(ErrorLevel) {
		t.Error("ErrorLevel should be enabled at WARN")
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected error message in output")
	}
}

func TestWithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := NewJSONLogger(&buf, InfoLevel)
	child := root.With(MachineID("m-1"))

	child.Info("encoded")
	if !strings.Contains(buf.String(), `"machine_id":"m-1"`) {
		t.Errorf("child fields missing: %q", buf.String())
	}

	buf.Reset()
	root.SetLevel(ErrorLevel)
	child.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("child should follow root level, got %q", buf.String())
	}

	buf.Reset()
	root.SetLevel(InfoLevel)
	root.Info("root")
	if strings.Contains(buf.String(), "machine_id") {
		t.Error("child fields leaked into root")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
	if logger.Enabled(ErrorLevel) {
		t.Error("NopLogger should never be enabled")
	}
	if logger.With(String("a", "b")) == nil {
		t.Error("NopLogger.With returned nil")
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	op := StartTimer(logger, "encode", Operation("encode"))
	time.Sleep(time.Millisecond)
	op.End(Count(26))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log line: %v", err)
	}
	if _, ok := entry.Fields["latency"]; !ok {
		t.Error("latency field missing")
	}
	if entry.Fields["count"] != float64(26) {
		t.Errorf("count = %v", entry.Fields["count"])
	}

	buf.Reset()
	op = StartTimer(logger, "parse")
	op.EndError(errors.New("bad string"))
	if !strings.Contains(buf.String(), `"error":"bad string"`) {
		t.Errorf("error field missing: %q", buf.String())
	}
}
