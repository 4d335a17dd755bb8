package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
	"github.com/dd0wney/cluso-enigma/pkg/enigma"
	"github.com/dd0wney/cluso-enigma/pkg/keying"
	"github.com/dd0wney/cluso-enigma/pkg/logging"
	"github.com/dd0wney/cluso-enigma/pkg/metrics"
	"github.com/dd0wney/cluso-enigma/pkg/validation"
)

// ErrInvalidArguments is returned for flag combinations that cannot work together
var ErrInvalidArguments = errors.New("invalid arguments")

const defaultGroupSize = 5

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "text"}
)

type options struct {
	text       string
	inputFile  string
	keyFile    string
	outputFile string

	configuration string
	random        bool
	rotors        int
	plugPairs     int
	passphrase    string
	salt          string

	keep      keepPolicy
	groups    bool
	groupSize int
	saveKey   bool

	helpConfiguration bool
	debug             bool
	profile           string
	metricsTextfile   string
	logLevel          string
	logFormat         string

	textSet bool
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "enigma",
		Short: "Encode text with an Enigma rotor machine",
		Long: `Encode text with an Enigma rotor machine.

The machine is its own inverse: encoding the output again with the same
starting configuration gives back the input.

INPUT:
  enigma --string "Attack at dawn" --configuration "B II:1-I:3-III:20 AB:CD"
  enigma --input-file message.txt --key-file message.key
  echo "Attack at dawn" | enigma --random-configuration

OUTPUT:
  The starting configuration string on the first line, then the encoded text
  (or the output file path when --output-file is given).

Run with --help-configuration for the configuration string format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.textSet = cmd.Flags().Changed("string")
			if o.profile != "" {
				p, err := loadProfile(o.profile)
				if err != nil {
					return err
				}
				p.applyTo(o, cmd.Flags())
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), o)
		},
	}

	f := cmd.Flags()

	// Input and output
	f.StringVarP(&o.text, "string", "s", "", "String to encode")
	f.StringVarP(&o.inputFile, "input-file", "f", "", "Path to source file (default: stdin)")
	f.StringVarP(&o.outputFile, "output-file", "o", "", "Path to destination file")
	f.BoolVar(&o.saveKey, "save-key", false, "Save the starting configuration to <output-file>.key")

	// Machine configuration
	f.StringVarP(&o.configuration, "configuration", "c", "", "Configuration string, e.g. 'A II:10-I:3-III:20 AB:CD:XZ:GE'")
	f.StringVarP(&o.keyFile, "key-file", "k", "", "Read the configuration string from the first line of a file")
	f.BoolVarP(&o.random, "random-configuration", "r", false, "Use a random rotor, reflector and plugboard configuration")
	f.IntVar(&o.rotors, "rotors", enigma.DefaultRandomRotors, "Number of rotors in a random configuration (1-8)")
	f.IntVar(&o.plugPairs, "plug-pairs", enigma.DefaultRandomPlugPairs, "Number of plugboard pairs in a random configuration (0-13)")
	f.StringVar(&o.passphrase, "passphrase", "", "Draw the random configuration from a passphrase, so it can be repeated")
	f.StringVar(&o.salt, "salt", "", "Hex salt for --passphrase (generated and logged when omitted)")

	// Formatting
	f.BoolVar(&o.keep.spaces, "keep-spaces", false, "Keep spaces in the output")
	f.BoolVar(&o.keep.special, "keep-special", false, "Keep all other non-letter characters in the output")
	f.BoolVar(&o.keep.newLines, "keep-new-line", false, "Keep new line characters in the output")
	f.BoolVarP(&o.groups, "groups", "g", false, "Divide the output into upper-case groups, e.g. 'ENIGM AISCO OL'")
	f.IntVar(&o.groupSize, "group-size", defaultGroupSize, "Letters per group with --groups")

	// Diagnostics
	f.BoolVar(&o.helpConfiguration, "help-configuration", false, "Show the configuration string format")
	f.BoolVarP(&o.debug, "debug", "d", false, "Log every stage of the signal path to stderr")
	f.StringVar(&o.profile, "profile", "", "YAML file with default settings")
	f.StringVar(&o.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file when done")

	return cmd
}

func (o *options) randomized() bool {
	return o.random || o.passphrase != ""
}

func (o *options) validate() error {
	err := validation.NewConfigValidator("enigma").
		Exclusive(map[string]bool{
			"--string":     o.textSet,
			"--input-file": o.inputFile != "",
		}).
		Exclusive(map[string]bool{
			"--configuration":        o.configuration != "",
			"--key-file":             o.keyFile != "",
			"--random-configuration": o.randomized(),
		}).
		When(o.groups && o.keep.any(), func(cv *validation.ConfigValidator) {
			cv.Custom("groups", func() error {
				return errors.New("cannot be used with --keep-spaces, --keep-special or --keep-new-line")
			})
		}).
		When(o.randomized(), func(cv *validation.ConfigValidator) {
			cv.RangeInt("rotors", o.rotors, 1, len(enigma.RotorNames())).
				RangeInt("plug-pairs", o.plugPairs, 0, enigma.MaxPlugPairs)
		}).
		When(o.salt != "" && o.passphrase == "", func(cv *validation.ConfigValidator) {
			cv.Custom("salt", func() error { return errors.New("requires --passphrase") })
		}).
		When(o.saveKey && o.outputFile == "", func(cv *validation.ConfigValidator) {
			cv.Custom("save-key", func() error { return errors.New("requires --output-file") })
		}).
		Custom("group-size", func() error {
			return validation.Var("value", o.groupSize, "min=1")
		}).
		Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return nil
}

func run(stdin io.Reader, stdout, stderr io.Writer, o *options) error {
	if o.helpConfiguration {
		_, err := fmt.Fprint(stdout, configurationHelp)
		return err
	}

	if err := o.validate(); err != nil {
		return err
	}

	logger, err := newLogger(stderr, o)
	if err != nil {
		return err
	}
	logger.Debug("options",
		logging.Bool("groups", o.groups),
		logging.Int("group_size", o.groupSize),
		logging.Bool("keep_spaces", o.keep.spaces),
		logging.Bool("keep_special", o.keep.special),
		logging.Bool("keep_new_line", o.keep.newLines),
		logging.Bool("random", o.randomized()),
	)

	var reg *metrics.Registry
	if o.metricsTextfile != "" {
		reg = metrics.NewRegistry()
	}

	m, err := newMachine(o, logger, reg)
	if err != nil {
		return err
	}
	// the starting configuration is the key for decoding
	key := m.Configuration()

	text, err := readInput(stdin, o)
	if err != nil {
		return err
	}

	timer := logging.StartTimer(logger, "text encoded", logging.Operation("encode"), logging.MachineID(m.ID()))
	encoded := m.Transcribe(text, o.keep.keeps)
	timer.End(logging.Count(len(encoded)))

	if o.groups {
		encoded = alphabet.Group(encoded, o.groupSize)
	}

	result := encoded
	if o.outputFile != "" {
		write := logging.StartTimer(logger, "output written", logging.Operation("write"), logging.Path(o.outputFile))
		if result, err = writeOutput(o, encoded, key); err != nil {
			write.EndError(err)
			return err
		}
		write.End()
	}

	if reg != nil {
		if err := reg.WriteTextfile(o.metricsTextfile); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(stdout, "%s\n%s\n", key, result)
	return err
}

// newLogger writes to stderr at warn level in text unless the profile or
// ENIGMA_LOG_LEVEL and ENIGMA_LOG_FORMAT say otherwise. --debug wins.
func newLogger(stderr io.Writer, o *options) (logging.Logger, error) {
	levelName := strings.ToLower(validation.DefaultOr(o.logLevel, os.Getenv("ENIGMA_LOG_LEVEL")))
	formatName := strings.ToLower(validation.DefaultOr(o.logFormat, os.Getenv("ENIGMA_LOG_FORMAT")))

	err := validation.NewConfigValidator("logging").
		When(levelName != "", func(cv *validation.ConfigValidator) {
			cv.OneOf("level", levelName, logLevels)
		}).
		When(formatName != "", func(cv *validation.ConfigValidator) {
			cv.OneOf("format", formatName, logFormats)
		}).
		Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	level := logging.WarnLevel
	if levelName != "" {
		level = logging.ParseLevel(levelName)
	}
	if o.debug {
		level = logging.DebugLevel
	}

	format := logging.TextFormat
	if formatName != "" {
		format = logging.ParseFormat(formatName)
	}

	return logging.NewStreamLogger(stderr, level, format).With(logging.Component("cli")), nil
}

func newMachine(o *options, logger logging.Logger, reg *metrics.Registry) (*enigma.Machine, error) {
	opts := []enigma.Option{enigma.WithLogger(logger), enigma.WithMetrics(reg)}
	if reg != nil {
		codec, err := enigma.NewCodec(enigma.DefaultCodecCacheSize, reg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, enigma.WithCodec(codec))
	}

	switch {
	case o.configuration != "":
		opts = append(opts, enigma.WithConfiguration(o.configuration))
	case o.keyFile != "":
		line, err := readKeyFile(o.keyFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, enigma.WithConfiguration(line))
	case o.randomized():
		rng, err := keyedRand(o, logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, enigma.WithRandomAmounts(o.rotors, o.plugPairs), enigma.WithRand(rng))
	}

	return enigma.New(opts...)
}

// keyedRand returns the passphrase derived source, or nil for the global one
func keyedRand(o *options, logger logging.Logger) (*rand.Rand, error) {
	if o.passphrase == "" {
		return nil, nil
	}

	var salt []byte
	var err error
	if o.salt != "" {
		salt, err = keying.DecodeSalt(o.salt)
	} else {
		salt, err = keying.GenerateSalt()
		if err == nil {
			logger.Warn("generated salt, pass it with --salt to repeat this configuration",
				logging.String("salt", keying.EncodeSalt(salt)))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	return keying.NewRand(o.passphrase, salt)
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func readInput(stdin io.Reader, o *options) (string, error) {
	switch {
	case o.textSet:
		return o.text, nil
	case o.inputFile != "":
		data, err := os.ReadFile(o.inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

// writeOutput stores the encoded text, and the key when asked, returning
// the absolute output path
func writeOutput(o *options, encoded, key string) (string, error) {
	path, err := filepath.Abs(o.outputFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	if o.saveKey {
		if err := os.WriteFile(path+".key", []byte(key), 0o600); err != nil {
			return "", fmt.Errorf("failed to write key file: %w", err)
		}
	}

	return path, nil
}
