package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		value     int
		expectErr bool
	}{
		{0, true},
		{1, false},
		{8, false},
		{9, true},
	}

	for _, tt := range tests {
		err := NewConfigValidator("Random").RangeInt("Rotors", tt.value, 1, 8).Validate()
		if (err != nil) != tt.expectErr {
			t.Errorf("RangeInt(%d) error = %v, want error %v", tt.value, err, tt.expectErr)
		}
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	if err := NewConfigValidator("Log").OneOf("Level", "info", levels).Validate(); err != nil {
		t.Errorf("Expected no error for allowed value, got %v", err)
	}

	err := NewConfigValidator("Log").OneOf("Level", "trace", levels).Validate()
	if err == nil {
		t.Fatal("Expected error for disallowed value")
	}
	if !strings.Contains(err.Error(), `Log.Level: value "trace"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestConfigValidator_Exclusive(t *testing.T) {
	cv := NewConfigValidator("Options").Exclusive(map[string]bool{
		"string":     true,
		"input-file": true,
		"stdin":      false,
	})

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected error for two exclusive switches")
	}
	if !strings.Contains(err.Error(), "[input-file string]") {
		t.Errorf("Expected sorted field list in error, got %v", err)
	}

	err = NewConfigValidator("Options").Exclusive(map[string]bool{"string": true, "input-file": false}).Validate()
	if err != nil {
		t.Errorf("Expected no error for a single switch, got %v", err)
	}
}

func TestConfigValidator_CustomAndWhen(t *testing.T) {
	sentinel := errors.New("boom")

	cv := NewConfigValidator("Options").
		Custom("Key", func() error { return sentinel }).
		When(false, func(cv *ConfigValidator) { cv.RangeInt("Skipped", 0, 1, 2) })

	err := cv.Validate()
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected Custom error to wrap sentinel, got %v", err)
	}
	if strings.Contains(err.Error(), "Skipped") {
		t.Error("When(false) should not run its validations")
	}

	err = NewConfigValidator("Options").
		When(true, func(cv *ConfigValidator) { cv.RangeInt("Applied", 0, 1, 2) }).
		Validate()
	if err == nil || !strings.Contains(err.Error(), "Options.Applied") {
		t.Errorf("When(true) should run its validations, got %v", err)
	}
}

func TestConfigValidator_ValidateJoins(t *testing.T) {
	cv := NewConfigValidator("Options").
		RangeInt("A", 0, 1, 2).
		RangeInt("B", 5, 1, 2)

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "Options.A") || !strings.Contains(err.Error(), "Options.B") {
		t.Errorf("Expected both errors in %v", err)
	}

	if NewConfigValidator("Empty").Validate() != nil {
		t.Error("Expected nil for no errors")
	}
}

func TestDefaultOr(t *testing.T) {
	if DefaultOr(0, 5) != 5 {
		t.Error("DefaultOr(0, 5) should be 5")
	}
	if DefaultOr(3, 5) != 3 {
		t.Error("DefaultOr(3, 5) should be 3")
	}
	if DefaultOr("", "A I-II") != "A I-II" {
		t.Error("DefaultOr(\"\", ...) should return default")
	}
}
