package enigma

import (
	"math/rand/v2"

	"github.com/dd0wney/cluso-enigma/pkg/logging"
	"github.com/dd0wney/cluso-enigma/pkg/metrics"
)

// Option configures a Machine at construction
type Option func(*options)

type options struct {
	random          bool
	randomRotors    int
	randomPlugPairs int

	configuration    string
	hasConfiguration bool

	rotors    []*Rotor
	hasRotors bool
	reflector *Reflector
	plugboard *Plugboard

	rng     *rand.Rand
	logger  logging.Logger
	metrics *metrics.Registry
	codec   *Codec
}

func defaultOptions() *options {
	return &options{
		randomRotors:    DefaultRandomRotors,
		randomPlugPairs: DefaultRandomPlugPairs,
		logger:          logging.NewNopLogger(),
	}
}

// WithRandomConfiguration starts the machine from a random configuration of
// DefaultRandomRotors rotors and DefaultRandomPlugPairs plug pairs
func WithRandomConfiguration() Option {
	return func(o *options) {
		o.random = true
	}
}

// WithRandomAmounts starts the machine from a random configuration of the
// given size
func WithRandomAmounts(rotors, plugPairs int) Option {
	return func(o *options) {
		o.random = true
		o.randomRotors = rotors
		o.randomPlugPairs = plugPairs
	}
}

// WithConfiguration starts the machine from a configuration string
func WithConfiguration(s string) Option {
	return func(o *options) {
		o.configuration = s
		o.hasConfiguration = true
	}
}

// WithRotors sets the rotors, listed reflector-adjacent first.
// The machine takes ownership of them. An empty list is an error.
func WithRotors(rotors ...*Rotor) Option {
	return func(o *options) {
		o.rotors = rotors
		o.hasRotors = true
	}
}

// WithReflector sets the reflector
func WithReflector(r *Reflector) Option {
	return func(o *options) {
		o.reflector = r
	}
}

// WithPlugboard sets the plugboard. The machine takes ownership of it.
func WithPlugboard(pb *Plugboard) Option {
	return func(o *options) {
		o.plugboard = pb
	}
}

// WithRand sets the source used for random configurations
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger sets the logger. Debug level traces every letter.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records machine activity into reg
func WithMetrics(reg *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = reg
	}
}

// WithCodec replaces the package codec used by SetConfiguration
func WithCodec(c *Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// defaultComponents builds the stock machine: rotors I and II at 0,
// reflector A and an empty plugboard. Every call returns fresh instances.
func defaultComponents() (*Reflector, []*Rotor, *Plugboard) {
	reflector := &Reflector{name: "A", wiring: reflectorWirings["A"]}
	rotors := []*Rotor{
		{name: "I", wiring: rotorWirings["I"]},
		{name: "II", wiring: rotorWirings["II"]},
	}
	return reflector, rotors, &Plugboard{}
}
