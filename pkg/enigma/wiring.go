package enigma

import (
	"fmt"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

// wiring is an immutable substitution table with its inverse.
// Catalog wirings are shared read-only between every component built from them.
type wiring struct {
	forward [alphabet.Size]int
	inverse [alphabet.Size]int
}

// newWiring builds a wiring from a 26-letter key, where key[i] is the letter
// index i maps to. The key must be a permutation of the alphabet.
func newWiring(key string) (*wiring, error) {
	if len(key) != alphabet.Size {
		return nil, fmt.Errorf("wiring key must have %d letters, got %d", alphabet.Size, len(key))
	}

	w := &wiring{}
	var seen [alphabet.Size]bool
	for i := 0; i < len(key); i++ {
		j, ok := alphabet.Index(key[i])
		if !ok {
			return nil, fmt.Errorf("wiring key has non-letter %q at %d", key[i], i)
		}
		if seen[j] {
			return nil, fmt.Errorf("wiring key repeats %q", key[i])
		}
		seen[j] = true
		w.forward[i] = j
		w.inverse[j] = i
	}
	return w, nil
}

// isReflection reports whether the wiring is an involution without fixed points
func (w *wiring) isReflection() bool {
	for i, j := range w.forward {
		if i == j || w.forward[j] != i {
			return false
		}
	}
	return true
}

func mustWiring(key string) *wiring {
	w, err := newWiring(key)
	if err != nil {
		panic(fmt.Sprintf("enigma: bad catalog wiring %q: %v", key, err))
	}
	return w
}
