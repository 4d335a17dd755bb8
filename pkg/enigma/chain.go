package enigma

import (
	"fmt"
	"slices"
)

// Order selects the direction Chain.Rotors lists rotors in
type Order int

const (
	// FastFirst starts at the plugboard-adjacent rotor, the one stepped per letter
	FastFirst Order = iota
	// ReflectorFirst starts at the reflector-adjacent rotor, the order used in
	// configuration strings
	ReflectorFirst
)

// Chain owns an ordered set of rotors. Index 0 is the fast rotor next to the
// plugboard, the last index sits next to the reflector; a rotor's neighbours
// are simply index-1 and index+1.
type Chain struct {
	rotors []*Rotor
}

// NewChain builds a chain from rotors listed reflector-adjacent first, the way
// they are written in a configuration string. The last rotor given becomes
// the fast rotor.
func NewChain(rotors ...*Rotor) (*Chain, error) {
	if len(rotors) == 0 {
		return nil, fmt.Errorf("empty rotor list: %w", ErrInvalidConfiguration)
	}

	owned := make([]*Rotor, len(rotors))
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("rotor %d is nil: %w", i, ErrInvalidConfiguration)
		}
		if slices.Contains(owned, r) {
			return nil, fmt.Errorf("rotor %s appears twice in the chain: %w", r.name, ErrInvalidConfiguration)
		}
		owned[len(rotors)-1-i] = r
	}

	return &Chain{rotors: owned}, nil
}

// Len returns the number of rotors
func (c *Chain) Len() int {
	return len(c.rotors)
}

// First returns the fast rotor
func (c *Chain) First() *Rotor {
	return c.rotors[0]
}

// Last returns the reflector-adjacent rotor
func (c *Chain) Last() *Rotor {
	return c.rotors[len(c.rotors)-1]
}

// Rotors returns the rotors in the requested order.
// The slice is a copy; the rotors are not.
func (c *Chain) Rotors(order Order) []*Rotor {
	out := slices.Clone(c.rotors)
	if order == ReflectorFirst {
		slices.Reverse(out)
	}
	return out
}

// Step advances the fast rotor. Each rotor that wraps from 25 to 0 carries a
// single step into the next one, like an odometer. Step returns how many
// rotors moved.
func (c *Chain) Step() int {
	moved := 0
	for _, r := range c.rotors {
		moved++
		if !r.advance() {
			break
		}
	}
	return moved
}

// Forward sends index i from the plugboard side through every rotor
func (c *Chain) Forward(i int) int {
	return c.forward(i, nil)
}

// Backward sends index i from the reflector side through every rotor
func (c *Chain) Backward(i int) int {
	return c.backward(i, nil)
}

// visitFunc observes one rotor crossing; used for signal tracing
type visitFunc func(r *Rotor, dir Direction, in, out int)

func (c *Chain) forward(i int, visit visitFunc) int {
	for _, r := range c.rotors {
		out := r.forward(i)
		if visit != nil {
			visit(r, Forward, i, out)
		}
		i = out
	}
	return i
}

func (c *Chain) backward(i int, visit visitFunc) int {
	for k := len(c.rotors) - 1; k >= 0; k-- {
		r := c.rotors[k]
		out := r.backward(i)
		if visit != nil {
			visit(r, Backward, i, out)
		}
		i = out
	}
	return i
}

// Positions snapshots every rotor position, fast rotor first
func (c *Chain) Positions() []int {
	out := make([]int, len(c.rotors))
	for i, r := range c.rotors {
		out[i] = r.position
	}
	return out
}

// SetPositions restores a snapshot taken with Positions.
// Nothing changes if the snapshot does not fit the chain.
func (c *Chain) SetPositions(positions []int) error {
	if len(positions) != len(c.rotors) {
		return fmt.Errorf("got %d positions for %d rotors: %w", len(positions), len(c.rotors), ErrInvalidConfiguration)
	}
	for _, p := range positions {
		if err := checkPosition(p); err != nil {
			return err
		}
	}
	for i, p := range positions {
		c.rotors[i].position = p
	}
	return nil
}
