package enigma

import (
	"fmt"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

type catalogEntry struct {
	name string
	key  string
}

var reflectorCatalog = []catalogEntry{
	{"A", "ejmzalyxvbwfcrquontspikhgd"},
	{"B", "yruhqsldpxngokmiebfzcwvjat"},
	{"C", "fvpjiaoyedrzxwgctkuqsbnmhl"},
}

var reflectorWirings = make(map[string]*wiring, len(reflectorCatalog))

func init() {
	for _, e := range reflectorCatalog {
		w := mustWiring(e.key)
		if !w.isReflection() {
			panic(fmt.Sprintf("enigma: reflector %s is not an involution without fixed points", e.name))
		}
		reflectorWirings[e.name] = w
	}
}

// Reflector is a fixed involutive substitution applied between the forward
// and backward passes through the rotors. It holds no state.
type Reflector struct {
	name   string
	wiring *wiring
}

// ReflectorByName returns the catalog reflector with the given name
func ReflectorByName(name string) (*Reflector, error) {
	w, ok := reflectorWirings[name]
	if !ok {
		return nil, fmt.Errorf("reflector %q: %w", name, ErrNotFound)
	}
	return &Reflector{name: name, wiring: w}, nil
}

// ReflectorNames lists the catalog in order
func ReflectorNames() []string {
	names := make([]string, len(reflectorCatalog))
	for i, e := range reflectorCatalog {
		names[i] = e.name
	}
	return names
}

// Reflectors returns one instance of every catalog reflector
func Reflectors() []*Reflector {
	out := make([]*Reflector, len(reflectorCatalog))
	for i, e := range reflectorCatalog {
		out[i] = &Reflector{name: e.name, wiring: reflectorWirings[e.name]}
	}
	return out
}

// Name returns the catalog name
func (r *Reflector) Name() string {
	return r.name
}

func (r *Reflector) String() string {
	return r.name
}

// Encode reflects a single lowercase letter. It panics on anything else.
func (r *Reflector) Encode(c byte) byte {
	return alphabet.Letter(r.reflect(alphabet.MustIndex(c)))
}

func (r *Reflector) reflect(i int) int {
	return r.wiring.forward[i]
}
