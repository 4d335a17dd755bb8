package enigma

import (
	"errors"
)

var (
	// ErrNotFound is returned when a reflector or rotor name is not in the catalog
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfigurationString is returned when a configuration string
	// does not follow the grammar
	ErrInvalidConfigurationString = errors.New("invalid configuration string")
	// ErrInvalidConfiguration is returned for structurally invalid components
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidPlugboardPair is returned when a pair is not two distinct letters
	ErrInvalidPlugboardPair = errors.New("invalid plugboard pair")
	// ErrNotUniquePair is returned when a letter is already plugged
	ErrNotUniquePair = errors.New("plugboard letter already in use")
)

// errorKind maps an error to a short label for metrics
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidConfigurationString):
		return "invalid_configuration_string"
	case errors.Is(err, ErrInvalidPlugboardPair):
		return "invalid_plugboard_pair"
	case errors.Is(err, ErrNotUniquePair):
		return "not_unique_pair"
	case errors.Is(err, ErrInvalidConfiguration):
		return "invalid_configuration"
	default:
		return "unknown"
	}
}
