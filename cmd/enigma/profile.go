package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-enigma/pkg/validation"
)

// Profile holds CLI defaults read from a YAML file. Flags given on the
// command line win over the profile.
type Profile struct {
	Configuration string `yaml:"configuration"`
	Rotors        int    `yaml:"rotors" validate:"omitempty,min=1,max=8"`
	PlugPairs     *int   `yaml:"plug_pairs" validate:"omitempty,min=0,max=13"`
	Groups        bool   `yaml:"groups"`
	GroupSize     int    `yaml:"group_size" validate:"omitempty,min=1"`
	KeepSpaces    bool   `yaml:"keep_spaces"`
	KeepSpecial   bool   `yaml:"keep_special"`
	KeepNewLine   bool   `yaml:"keep_new_line"`
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat     string `yaml:"log_format" validate:"omitempty,oneof=json text"`
}

func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := validation.Struct(&p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	return &p, nil
}

// applyTo copies profile values into o for every flag the user did not set
func (p *Profile) applyTo(o *options, flags *pflag.FlagSet) {
	unset := func(name string) bool { return !flags.Changed(name) }

	if p.Configuration != "" && unset("configuration") && unset("key-file") &&
		unset("random-configuration") && unset("passphrase") {
		o.configuration = p.Configuration
	}
	if p.Rotors != 0 && unset("rotors") {
		o.rotors = p.Rotors
	}
	if p.PlugPairs != nil && unset("plug-pairs") {
		o.plugPairs = *p.PlugPairs
	}
	if p.GroupSize != 0 && unset("group-size") {
		o.groupSize = p.GroupSize
	}

	// groups and the keep flags exclude each other, so choosing either one
	// on the command line drops the other from the profile
	keepSet := !unset("keep-spaces") || !unset("keep-special") || !unset("keep-new-line")
	if unset("groups") && !keepSet {
		o.groups = p.Groups
	}
	if unset("groups") || !o.groups {
		if unset("keep-spaces") {
			o.keep.spaces = p.KeepSpaces
		}
		if unset("keep-special") {
			o.keep.special = p.KeepSpecial
		}
		if unset("keep-new-line") {
			o.keep.newLines = p.KeepNewLine
		}
	}
	if p.LogLevel != "" {
		o.logLevel = p.LogLevel
	}
	if p.LogFormat != "" {
		o.logFormat = p.LogFormat
	}
}
