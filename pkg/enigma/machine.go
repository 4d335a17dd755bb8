package enigma

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
	"github.com/dd0wney/cluso-enigma/pkg/logging"
	"github.com/dd0wney/cluso-enigma/pkg/metrics"
)

const (
	modeAdvance    = "advance"
	modePreserve   = "preserve"
	modeTranscribe = "transcribe"
)

// Machine composes a rotor chain, a reflector and a plugboard into the full
// encode pipeline. Encoding is its own inverse: a machine reset to the same
// configuration turns ciphertext back into plaintext.
//
// A Machine is not safe for concurrent use; give each stream its own.
type Machine struct {
	id        string
	chain     *Chain
	reflector *Reflector
	plugboard *Plugboard

	codec   *Codec
	rng     *rand.Rand
	logger  logging.Logger
	metrics *metrics.Registry
}

// New creates a machine. Without options it is set to DefaultConfiguration.
// WithConfiguration and WithRandomConfiguration cannot be combined; either
// one overrides WithRotors, WithReflector and WithPlugboard.
func New(opts ...Option) (*Machine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.random && o.hasConfiguration {
		return nil, fmt.Errorf("random and explicit configuration are exclusive: %w", ErrInvalidConfiguration)
	}

	m := &Machine{
		id:      uuid.NewString(),
		codec:   o.codec,
		rng:     o.rng,
		metrics: o.metrics,
	}
	if m.codec == nil {
		m.codec = defaultCodec
	}
	m.logger = o.logger.With(logging.Component("enigma"), logging.MachineID(m.id))

	switch {
	case o.hasConfiguration:
		if err := m.SetConfiguration(o.configuration); err != nil {
			return nil, err
		}
	case o.random:
		if err := m.SetRandomConfiguration(o.randomRotors, o.randomPlugPairs); err != nil {
			return nil, err
		}
	default:
		reflector, rotors, plugboard := defaultComponents()
		if o.reflector != nil {
			reflector = o.reflector
		}
		if o.hasRotors {
			rotors = o.rotors
		}
		if o.plugboard != nil {
			plugboard = o.plugboard
		}
		if err := m.install("options", reflector, rotors, plugboard); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ID identifies the machine in logs
func (m *Machine) ID() string {
	return m.id
}

// Chain returns the current rotor chain
func (m *Machine) Chain() *Chain {
	return m.chain
}

// Reflector returns the current reflector
func (m *Machine) Reflector() *Reflector {
	return m.reflector
}

// Plugboard returns a copy of the current plugboard. Changing the plugs of a
// running machine goes through SetConfiguration.
func (m *Machine) Plugboard() *Plugboard {
	return &Plugboard{pairs: m.plugboard.Pairs()}
}

// Configuration returns the current configuration string
func (m *Machine) Configuration() string {
	return FormatConfiguration(m.reflector, m.chain.Rotors(ReflectorFirst), m.plugboard)
}

// SetConfiguration replaces the whole machine state from a configuration
// string. On error the previous state is left untouched.
func (m *Machine) SetConfiguration(s string) error {
	reflector, rotors, plugboard, err := m.codec.Parse(s)
	if err != nil {
		m.logger.Warn("configuration rejected", logging.Configuration(s), logging.Error(err))
		return err
	}
	return m.install("string", reflector, rotors, plugboard)
}

// SetRandomConfiguration replaces the machine state with rotors distinct
// random rotors (1-8) and plugPairs random plugboard pairs (0-13)
func (m *Machine) SetRandomConfiguration(rotors, plugPairs int) error {
	cfg, err := RandomConfiguration(m.rng, rotors, plugPairs)
	if err != nil {
		return err
	}
	reflector, rs, plugboard, err := cfg.Build()
	if err != nil {
		return err
	}
	return m.install("random", reflector, rs, plugboard)
}

// install swaps in new components once they form a valid chain
func (m *Machine) install(source string, reflector *Reflector, rotors []*Rotor, plugboard *Plugboard) error {
	if reflector == nil || plugboard == nil {
		return fmt.Errorf("missing reflector or plugboard: %w", ErrInvalidConfiguration)
	}
	chain, err := NewChain(rotors...)
	if err != nil {
		return err
	}

	m.chain = chain
	m.reflector = reflector
	m.plugboard = plugboard

	m.metrics.RecordConfigurationChange(source, chain.Len(), plugboard.Len())
	m.logger.Info("configuration set",
		logging.String("source", source),
		logging.Configuration(m.Configuration()),
	)
	return nil
}

// EncodeChar steps the rotors and sends one lowercase letter through the
// plugboard, the rotors, the reflector, the rotors again and the plugboard.
// It panics on anything but a lowercase letter.
func (m *Machine) EncodeChar(c byte) byte {
	out := m.encodeChar(c)
	m.metrics.RecordCharacter()
	return out
}

func (m *Machine) encodeChar(c byte) byte {
	alphabet.MustIndex(c)

	moved := m.chain.Step()
	m.metrics.RecordRotorSteps(moved)

	if m.logger.Enabled(logging.DebugLevel) {
		return m.traceChar(c)
	}

	i := alphabet.MustIndex(m.plugboard.swap(c))
	i = m.chain.Forward(i)
	i = m.reflector.reflect(i)
	i = m.chain.Backward(i)
	return m.plugboard.swap(alphabet.Letter(i))
}

// traceChar is encodeChar with a debug entry for every stage
func (m *Machine) traceChar(c byte) byte {
	stage := func(name string, in, out byte, fields ...logging.Field) {
		fields = append(fields, logging.Stage(name), logging.Letter("in", in), logging.Letter("out", out))
		m.logger.Debug("signal", fields...)
	}

	p := m.plugboard.swap(c)
	stage("plugboard", c, p)

	i := m.chain.forward(alphabet.MustIndex(p), func(r *Rotor, dir Direction, in, out int) {
		stage("rotor", alphabet.Letter(in), alphabet.Letter(out),
			logging.Rotor(r.name), logging.Position(r.position), logging.String("direction", dir.String()))
	})

	reflected := m.reflector.reflect(i)
	stage("reflector", alphabet.Letter(i), alphabet.Letter(reflected), logging.String("reflector", m.reflector.name))

	i = m.chain.backward(reflected, func(r *Rotor, dir Direction, in, out int) {
		stage("rotor", alphabet.Letter(in), alphabet.Letter(out),
			logging.Rotor(r.name), logging.Position(r.position), logging.String("direction", dir.String()))
	})

	out := m.plugboard.swap(alphabet.Letter(i))
	stage("plugboard", alphabet.Letter(i), out)

	m.logger.Debug("encoded", logging.Letter("in", c), logging.Letter("out", out))
	return out
}

// Encode keeps only the letters of text, lower-cases them and encodes them in
// order. The rotors keep the positions they reach.
func (m *Machine) Encode(text string) string {
	return m.encode(text, modeAdvance)
}

// EncodePreservingState encodes like Encode but puts the rotors back where
// they started, so repeated calls always begin from the same state.
func (m *Machine) EncodePreservingState(text string) string {
	positions := m.chain.Positions()
	defer func() {
		// the snapshot came from this chain, so it always fits
		_ = m.chain.SetPositions(positions)
	}()
	return m.encode(text, modePreserve)
}

// Transcribe encodes the ASCII letters of text in either case, like Encode,
// and copies every other character for which keep returns true. Letters
// outside A-Z have no rotor contact and are always dropped. A nil keep drops
// every non-letter.
func (m *Machine) Transcribe(text string, keep func(r rune) bool) string {
	start := time.Now()

	var b strings.Builder
	b.Grow(len(text))

	letters := 0
	for _, r := range text {
		if r < utf8.RuneSelf {
			if c, ok := alphabet.Fold(byte(r)); ok {
				b.WriteByte(m.encodeChar(c))
				letters++
				continue
			}
		} else if unicode.IsLetter(r) {
			continue
		}

		if keep != nil && keep(r) {
			b.WriteRune(r)
		}
	}

	m.metrics.RecordEncode(modeTranscribe, letters, time.Since(start))
	return b.String()
}

func (m *Machine) encode(text, mode string) string {
	start := time.Now()

	prepared := alphabet.Prepare(text)
	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		out[i] = m.encodeChar(prepared[i])
	}

	m.metrics.RecordEncode(mode, len(out), time.Since(start))
	return string(out)
}
