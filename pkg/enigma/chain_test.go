package enigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

func mustRotor(t *testing.T, name string, pos int) *Rotor {
	t.Helper()
	r, err := RotorByName(name, pos)
	require.NoError(t, err)
	return r
}

func rotorStrings(rotors []*Rotor) []string {
	out := make([]string, len(rotors))
	for i, r := range rotors {
		out[i] = r.String()
	}
	return out
}

func TestNewChainRejectsEmpty(t *testing.T) {
	_, err := NewChain()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewChain(nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewChainRejectsSharedRotor(t *testing.T) {
	r := mustRotor(t, "I", 0)
	_, err := NewChain(r, r)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// same catalog rotor twice is fine as long as the instances differ
	_, err = NewChain(mustRotor(t, "I", 0), mustRotor(t, "I", 0))
	assert.NoError(t, err)
}

func TestChainOrder(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "II", 1), mustRotor(t, "I", 3), mustRotor(t, "III", 20))
	require.NoError(t, err)

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, "III:20", chain.First().String(), "last rotor written is the fast rotor")
	assert.Equal(t, "II:1", chain.Last().String())
	assert.Equal(t, []string{"III:20", "I:3", "II:1"}, rotorStrings(chain.Rotors(FastFirst)))
	assert.Equal(t, []string{"II:1", "I:3", "III:20"}, rotorStrings(chain.Rotors(ReflectorFirst)))
	assert.Equal(t, []int{20, 3, 1}, chain.Positions())
}

func TestChainRotorsIsACopy(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "I", 0), mustRotor(t, "II", 0))
	require.NoError(t, err)

	rotors := chain.Rotors(FastFirst)
	rotors[0] = nil
	assert.NotNil(t, chain.First())
}

func TestChainStepWithoutCarry(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "I", 0), mustRotor(t, "II", 5))
	require.NoError(t, err)

	assert.Equal(t, 1, chain.Step())
	assert.Equal(t, []int{6, 0}, chain.Positions())
}

func TestChainStepCarry(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "I", 0), mustRotor(t, "II", 25))
	require.NoError(t, err)

	moved := chain.Step()
	assert.Equal(t, 2, moved)
	assert.Equal(t, []int{0, 1}, chain.Positions(), "fast rotor wraps and carries one step")

	assert.Equal(t, 1, chain.Step())
	assert.Equal(t, []int{1, 1}, chain.Positions())
}

func TestChainStepFullCascade(t *testing.T) {
	chain, err := NewChain(
		mustRotor(t, "IV", 25),
		mustRotor(t, "III", 25),
		mustRotor(t, "II", 25),
		mustRotor(t, "I", 25),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, chain.Step())
	assert.Equal(t, []int{0, 0, 0, 0}, chain.Positions())
}

func TestChainOdometer(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "III", 0), mustRotor(t, "II", 0), mustRotor(t, "I", 0))
	require.NoError(t, err)

	steps := alphabet.Size*alphabet.Size + 3
	for i := 0; i < steps; i++ {
		chain.Step()
	}
	assert.Equal(t, []int{3, 0, 1}, chain.Positions())
}

func TestChainForwardBackwardInverse(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "V", 7), mustRotor(t, "VI", 13), mustRotor(t, "VII", 21))
	require.NoError(t, err)

	for i := 0; i < alphabet.Size; i++ {
		assert.Equal(t, i, chain.Backward(chain.Forward(i)))
		assert.Equal(t, i, chain.Forward(chain.Backward(i)))
	}
}

func TestChainForwardVisitsInOrder(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "II", 0), mustRotor(t, "I", 0))
	require.NoError(t, err)

	var forward, backward []string
	chain.forward(0, func(r *Rotor, dir Direction, in, out int) {
		assert.Equal(t, Forward, dir)
		forward = append(forward, r.Name())
	})
	chain.backward(0, func(r *Rotor, dir Direction, in, out int) {
		assert.Equal(t, Backward, dir)
		backward = append(backward, r.Name())
	})

	assert.Equal(t, []string{"I", "II"}, forward)
	assert.Equal(t, []string{"II", "I"}, backward)
}

func TestChainSetPositions(t *testing.T) {
	chain, err := NewChain(mustRotor(t, "I", 0), mustRotor(t, "II", 0))
	require.NoError(t, err)

	require.NoError(t, chain.SetPositions([]int{4, 9}))
	assert.Equal(t, []int{4, 9}, chain.Positions())

	assert.ErrorIs(t, chain.SetPositions([]int{1}), ErrInvalidConfiguration)
	assert.ErrorIs(t, chain.SetPositions([]int{1, 26}), ErrInvalidConfiguration)
	assert.Equal(t, []int{4, 9}, chain.Positions(), "rejected snapshot must not change anything")
}
