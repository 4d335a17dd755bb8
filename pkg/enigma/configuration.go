package enigma

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-enigma/pkg/validation"
)

// DefaultConfiguration is the machine a caller gets without asking for anything
const DefaultConfiguration = "A I:0-II:0"

var (
	rotorSpecPattern = regexp.MustCompile(`^(` + strings.Join(catalogNames(rotorCatalog), "|") + `)(?::(0|[1-9][0-9]?))?$`)
	plugSpecPattern  = regexp.MustCompile(`^[A-Z]{2}$`)
)

func catalogNames(entries []catalogEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// RotorSetting is one rotor of a configuration
type RotorSetting struct {
	Name     string `validate:"required,oneof=I II III IV V VI VII VIII"`
	Position int    `validate:"min=0,max=25"`
}

// Configuration is the decoded form of a configuration string.
// Rotors are listed reflector-adjacent first, as written.
type Configuration struct {
	Reflector string         `validate:"required,oneof=A B C"`
	Rotors    []RotorSetting `validate:"required,min=1,dive"`
	Plugs     []Pair         `validate:"max=13"`
}

// String formats the configuration as a configuration string
func (c Configuration) String() string {
	rotors := make([]string, len(c.Rotors))
	for i, r := range c.Rotors {
		rotors[i] = r.Name + ":" + strconv.Itoa(r.Position)
	}

	parts := []string{c.Reflector, strings.Join(rotors, "-")}
	if len(c.Plugs) > 0 {
		plugs := make([]string, len(c.Plugs))
		for i, p := range c.Plugs {
			plugs[i] = p.String()
		}
		parts = append(parts, strings.Join(plugs, ":"))
	}
	return strings.Join(parts, " ")
}

// Build instantiates fresh components for the configuration. Rotors come back
// in configuration order.
func (c Configuration) Build() (*Reflector, []*Rotor, *Plugboard, error) {
	reflector, err := ReflectorByName(c.Reflector)
	if err != nil {
		return nil, nil, nil, err
	}

	rotors := make([]*Rotor, len(c.Rotors))
	for i, s := range c.Rotors {
		if rotors[i], err = RotorByName(s.Name, s.Position); err != nil {
			return nil, nil, nil, err
		}
	}

	plugboard, err := NewPlugboard(c.Plugs...)
	if err != nil {
		return nil, nil, nil, err
	}

	return reflector, rotors, plugboard, nil
}

func (c Configuration) clone() Configuration {
	out := c
	out.Rotors = append([]RotorSetting(nil), c.Rotors...)
	out.Plugs = append([]Pair(nil), c.Plugs...)
	return out
}

// ValidateConfiguration checks the shape of a configuration string:
// "<reflector> <rotor>[:<pos>]-... [<PAIR>:<PAIR>...]". Surrounding whitespace
// is ignored. Pair semantics are left to DecodeConfiguration.
func ValidateConfiguration(s string) error {
	_, err := splitConfiguration(s)
	return err
}

type configurationSegments struct {
	reflector string
	rotors    []string
	plugs     []string
}

func splitConfiguration(s string) (configurationSegments, error) {
	var seg configurationSegments

	s = strings.TrimSpace(s)
	if s == "" {
		return seg, fmt.Errorf("empty string: %w", ErrInvalidConfigurationString)
	}

	parts := strings.Split(s, " ")
	if len(parts) < 2 || len(parts) > 3 {
		return seg, fmt.Errorf("%q has %d segments, want 2 or 3: %w", s, len(parts), ErrInvalidConfigurationString)
	}

	if _, ok := reflectorWirings[parts[0]]; !ok {
		return seg, fmt.Errorf("unknown reflector %q: %w", parts[0], ErrInvalidConfigurationString)
	}
	seg.reflector = parts[0]

	if parts[1] == "" {
		return seg, fmt.Errorf("missing rotors: %w", ErrInvalidConfigurationString)
	}
	seg.rotors = strings.Split(parts[1], "-")
	for _, r := range seg.rotors {
		if !rotorSpecPattern.MatchString(r) {
			return seg, fmt.Errorf("bad rotor %q: %w", r, ErrInvalidConfigurationString)
		}
	}

	if len(parts) == 3 {
		if parts[2] == "" {
			return seg, fmt.Errorf("empty plugboard segment: %w", ErrInvalidConfigurationString)
		}
		seg.plugs = strings.Split(parts[2], ":")
		for _, p := range seg.plugs {
			if !plugSpecPattern.MatchString(p) {
				return seg, fmt.Errorf("bad plugboard pair %q: %w", p, ErrInvalidConfigurationString)
			}
		}
	}

	return seg, nil
}

// DecodeConfiguration validates s and decodes it into a Configuration
// without building any components.
func DecodeConfiguration(s string) (Configuration, error) {
	seg, err := splitConfiguration(s)
	if err != nil {
		return Configuration{}, err
	}

	cfg := Configuration{
		Reflector: seg.reflector,
		Rotors:    make([]RotorSetting, len(seg.rotors)),
	}

	for i, spec := range seg.rotors {
		m := rotorSpecPattern.FindStringSubmatch(spec)
		cfg.Rotors[i].Name = m[1]
		if m[2] != "" {
			// the pattern allows at most two digits
			cfg.Rotors[i].Position, _ = strconv.Atoi(m[2])
		}
	}

	if err := validation.Struct(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("%v: %w", err, ErrInvalidConfigurationString)
	}

	// Plugging into a scratch board applies the pair rules in order
	board := &Plugboard{}
	for _, spec := range seg.plugs {
		p, err := ParsePair(spec)
		if err != nil {
			return Configuration{}, err
		}
		if err := board.Plug(p); err != nil {
			return Configuration{}, err
		}
	}
	cfg.Plugs = board.Pairs()

	return cfg, nil
}

// ParseConfiguration decodes s and builds fresh components for it.
// Rotors are returned in string order, reflector-adjacent first.
func ParseConfiguration(s string) (*Reflector, []*Rotor, *Plugboard, error) {
	return defaultCodec.Parse(s)
}

// FormatConfiguration is the inverse of ParseConfiguration. rotors must be
// listed reflector-adjacent first, as Chain.Rotors(ReflectorFirst) returns them.
func FormatConfiguration(reflector *Reflector, rotors []*Rotor, plugboard *Plugboard) string {
	cfg := Configuration{
		Reflector: reflector.Name(),
		Rotors:    make([]RotorSetting, len(rotors)),
	}
	for i, r := range rotors {
		cfg.Rotors[i] = RotorSetting{Name: r.Name(), Position: r.Position()}
	}
	if plugboard != nil {
		cfg.Plugs = plugboard.Pairs()
	}
	return cfg.String()
}
