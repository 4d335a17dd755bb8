package enigma

// Encoder turns text into cipher text
type Encoder interface {
	Encode(text string) string
}

// Configurable exposes a component state as a configuration string
type Configurable interface {
	Configuration() string
	SetConfiguration(s string) error
}

// Verify that Machine implements the interfaces
var _ Encoder = (*Machine)(nil)
var _ Configurable = (*Machine)(nil)
