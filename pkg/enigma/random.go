package enigma

import (
	"fmt"
	"math/rand/v2"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
	"github.com/dd0wney/cluso-enigma/pkg/validation"
)

const (
	// DefaultRandomRotors is the rotor count of a random configuration
	DefaultRandomRotors = 3
	// DefaultRandomPlugPairs is the plugboard pair count of a random configuration
	DefaultRandomPlugPairs = 6
)

// RandomConfiguration draws a configuration with the given number of distinct
// catalog rotors at random positions, a random reflector and plugPairs random
// plugboard pairs. A nil rng uses the global source.
func RandomConfiguration(rng *rand.Rand, rotors, plugPairs int) (Configuration, error) {
	err := validation.NewConfigValidator("RandomConfiguration").
		RangeInt("Rotors", rotors, 1, len(rotorCatalog)).
		RangeInt("PlugPairs", plugPairs, 0, MaxPlugPairs).
		Validate()
	if err != nil {
		return Configuration{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	intN, perm := rand.IntN, rand.Perm
	if rng != nil {
		intN, perm = rng.IntN, rng.Perm
	}

	cfg := Configuration{
		Reflector: reflectorCatalog[intN(len(reflectorCatalog))].name,
		Rotors:    make([]RotorSetting, rotors),
	}

	// distinct rotors, drawn without replacement
	order := perm(len(rotorCatalog))
	for i := range cfg.Rotors {
		cfg.Rotors[i] = RotorSetting{
			Name:     rotorCatalog[order[i]].name,
			Position: intN(alphabet.Size),
		}
	}

	board := &Plugboard{}
	for i := 0; i < plugPairs; i++ {
		board.PlugRandom(rng)
	}
	cfg.Plugs = board.Pairs()

	return cfg, nil
}
