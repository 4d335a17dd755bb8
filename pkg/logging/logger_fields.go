package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component field helpers
func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// Machine field helpers

func MachineID(id string) Field {
	return String("machine_id", id)
}

func Configuration(cfg string) Field {
	return String("configuration", cfg)
}

// Stage names a step of the signal path, e.g. "plugboard" or "rotor"
func Stage(name string) Field {
	return String("stage", name)
}

// Letter renders a single byte as a one-character string
func Letter(key string, c byte) Field {
	return String(key, string([]byte{c}))
}

func Rotor(name string) Field {
	return String("rotor", name)
}

func Position(pos int) Field {
	return Int("position", pos)
}
