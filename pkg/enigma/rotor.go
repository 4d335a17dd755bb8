package enigma

import (
	"fmt"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

// Direction selects which way a signal crosses a rotor
type Direction int

const (
	// Forward runs from the plugboard towards the reflector
	Forward Direction = iota
	// Backward runs from the reflector back towards the plugboard
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

var rotorCatalog = []catalogEntry{
	{"I", "ekmflgdqvzntowyhxuspaibrcj"},
	{"II", "wyhxuspaibrcjekmflgdqvznto"},
	{"III", "bdfhjlcprtxvznyeiwgakmusqo"},
	{"IV", "esovpzjayquirhxlnftgkdcmwb"},
	{"V", "vzbrgityupsdnhlxawmjqofeck"},
	{"VI", "jpgvoumfyqbenhzrdkasxlictw"},
	{"VII", "nzjhgrcxmyswboufaivlpekqdt"},
	{"VIII", "fkqhtlxocbjspdzramewniuygv"},
}

var rotorWirings = make(map[string]*wiring, len(rotorCatalog))

func init() {
	for _, e := range rotorCatalog {
		rotorWirings[e.name] = mustWiring(e.key)
	}
}

// Rotor is a substitution wheel with a rotating offset.
// The wiring is shared catalog data; the position belongs to the instance.
type Rotor struct {
	name     string
	wiring   *wiring
	position int
}

// RotorByName returns a new catalog rotor set to position, which must be in 0-25
func RotorByName(name string, position int) (*Rotor, error) {
	w, ok := rotorWirings[name]
	if !ok {
		return nil, fmt.Errorf("rotor %q: %w", name, ErrNotFound)
	}
	if err := checkPosition(position); err != nil {
		return nil, fmt.Errorf("rotor %q: %w", name, err)
	}
	return &Rotor{name: name, wiring: w, position: position}, nil
}

// RotorNames lists the catalog in order
func RotorNames() []string {
	names := make([]string, len(rotorCatalog))
	for i, e := range rotorCatalog {
		names[i] = e.name
	}
	return names
}

// Rotors returns one fresh instance of every catalog rotor at position 0
func Rotors() []*Rotor {
	out := make([]*Rotor, len(rotorCatalog))
	for i, e := range rotorCatalog {
		out[i] = &Rotor{name: e.name, wiring: rotorWirings[e.name]}
	}
	return out
}

func checkPosition(p int) error {
	if p < 0 || p >= alphabet.Size {
		return fmt.Errorf("position %d outside 0-%d: %w", p, alphabet.Size-1, ErrInvalidConfiguration)
	}
	return nil
}

// Name returns the catalog name
func (r *Rotor) Name() string {
	return r.name
}

// Position returns the current offset, 0-25
func (r *Rotor) Position() int {
	return r.position
}

// SetPosition moves the rotor to p, which must be in 0-25
func (r *Rotor) SetPosition(p int) error {
	if err := checkPosition(p); err != nil {
		return err
	}
	r.position = p
	return nil
}

// String renders the rotor the way it appears in a configuration string
func (r *Rotor) String() string {
	return fmt.Sprintf("%s:%d", r.name, r.position)
}

// Wiring returns a copy of the coding table
func (r *Rotor) Wiring() [alphabet.Size]int {
	return r.wiring.forward
}

// Encode passes one lowercase letter through this rotor alone.
// Traversal of neighbouring rotors is the chain's job. It panics on a non-letter.
func (r *Rotor) Encode(c byte, dir Direction) byte {
	i := alphabet.MustIndex(c)
	if dir == Backward {
		return alphabet.Letter(r.backward(i))
	}
	return alphabet.Letter(r.forward(i))
}

func (r *Rotor) forward(i int) int {
	return r.wiring.forward[(i+r.position)%alphabet.Size]
}

func (r *Rotor) backward(i int) int {
	return alphabet.Mod(r.wiring.inverse[i] - r.position)
}

// advance moves the rotor one step and reports whether it wrapped to 0
func (r *Rotor) advance() bool {
	r.position = (r.position + 1) % alphabet.Size
	return r.position == 0
}
