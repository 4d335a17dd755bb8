package enigma

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

// MaxPlugPairs is the number of pairs that uses up every letter
const MaxPlugPairs = alphabet.Size / 2

// Pair is an unordered pair of distinct lowercase letters
type Pair [2]byte

// NewPair builds a pair from two letters of either case
func NewPair(a, b byte) (Pair, error) {
	x, okA := alphabet.Fold(a)
	y, okB := alphabet.Fold(b)
	if !okA || !okB {
		return Pair{}, fmt.Errorf("%q%q are not both letters: %w", a, b, ErrInvalidPlugboardPair)
	}
	if x == y {
		return Pair{}, fmt.Errorf("%q is paired with itself: %w", x, ErrInvalidPlugboardPair)
	}
	return Pair{x, y}, nil
}

// ParsePair reads a two letter pair such as "AB"
func ParsePair(s string) (Pair, error) {
	if len(s) != 2 {
		return Pair{}, fmt.Errorf("%q must have exactly 2 letters: %w", s, ErrInvalidPlugboardPair)
	}
	return NewPair(s[0], s[1])
}

// Contains reports whether c is one of the pair's letters
func (p Pair) Contains(c byte) bool {
	return p[0] == c || p[1] == c
}

// Equal compares pairs without regard to order
func (p Pair) Equal(o Pair) bool {
	return p == o || (p[0] == o[1] && p[1] == o[0])
}

// String renders the pair upper-cased, as in configuration strings
func (p Pair) String() string {
	return strings.ToUpper(string(p[:]))
}

func (p Pair) valid() bool {
	return alphabet.IsLetter(p[0]) && alphabet.IsLetter(p[1]) && p[0] != p[1]
}

// Plugboard swaps the letters of each plugged pair on the way in and out.
// Pairs are disjoint and kept in insertion order.
type Plugboard struct {
	pairs []Pair
}

// NewPlugboard builds a plugboard from pairs, rejecting the whole set if any
// pair is invalid or reuses a letter.
func NewPlugboard(pairs ...Pair) (*Plugboard, error) {
	pb := &Plugboard{pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		if err := pb.Plug(p); err != nil {
			return nil, err
		}
	}
	return pb, nil
}

// Plug adds a pair
func (pb *Plugboard) Plug(p Pair) error {
	if !p.valid() {
		return fmt.Errorf("%q: %w", string(p[:]), ErrInvalidPlugboardPair)
	}
	if pb.plugged(p[0]) || pb.plugged(p[1]) {
		return fmt.Errorf("%s: %w", p, ErrNotUniquePair)
	}
	pb.pairs = append(pb.pairs, p)
	return nil
}

// Unplug removes p if it is plugged, in either letter order
func (pb *Plugboard) Unplug(p Pair) {
	for i, q := range pb.pairs {
		if q.Equal(p) {
			pb.pairs = append(pb.pairs[:i], pb.pairs[i+1:]...)
			return
		}
	}
}

// PlugRandom plugs two letters chosen uniformly from the unplugged ones.
// It returns false without changes once fewer than two letters are free.
// A nil rng uses the global source.
func (pb *Plugboard) PlugRandom(rng *rand.Rand) bool {
	free := make([]byte, 0, alphabet.Size)
	for i := 0; i < alphabet.Size; i++ {
		if c := alphabet.Letter(i); !pb.plugged(c) {
			free = append(free, c)
		}
	}
	if len(free) < 2 {
		return false
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	i := intN(len(free))
	first := free[i]
	free = append(free[:i], free[i+1:]...)
	second := free[intN(len(free))]

	pb.pairs = append(pb.pairs, Pair{first, second})
	return true
}

// Encode returns the partner of a plugged letter, or the letter itself.
// It panics on anything but a lowercase letter.
func (pb *Plugboard) Encode(c byte) byte {
	alphabet.MustIndex(c)
	return pb.swap(c)
}

func (pb *Plugboard) swap(c byte) byte {
	for _, p := range pb.pairs {
		switch c {
		case p[0]:
			return p[1]
		case p[1]:
			return p[0]
		}
	}
	return c
}

func (pb *Plugboard) plugged(c byte) bool {
	for _, p := range pb.pairs {
		if p.Contains(c) {
			return true
		}
	}
	return false
}

// Pairs returns a copy of the plugged pairs in insertion order
func (pb *Plugboard) Pairs() []Pair {
	out := make([]Pair, len(pb.pairs))
	copy(out, pb.pairs)
	return out
}

// Len returns the number of plugged pairs
func (pb *Plugboard) Len() int {
	return len(pb.pairs)
}

// Full reports whether every letter is plugged
func (pb *Plugboard) Full() bool {
	return len(pb.pairs) == MaxPlugPairs
}

// String renders the pairs as "AB:CD:...", empty when nothing is plugged
func (pb *Plugboard) String() string {
	parts := make([]string, len(pb.pairs))
	for i, p := range pb.pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, ":")
}
