// Package config loads indset settings from a TOML file.
//
// The default location follows the XDG base directory layout:
// $XDG_CONFIG_HOME/indset/config.toml (usually ~/.config/indset/config.toml).
// A missing default file is not an error; defaults apply. Command-line
// flags override whatever the file sets.
//
// Example file:
//
//	[exhaustive]
//	budget   = "10s"
//	max_sets = 0
//
//	[genetic]
//	population  = 100
//	generations = 200
//	mutation    = 0.05
//	seed        = 0
//	fitness     = "flat"
//
//	[output]
//	format    = "text"
//	one_based = false
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/katalvlaran/indset/exhaustive"
	"github.com/katalvlaran/indset/genetic"
)

const (
	appName  = "indset"
	fileName = "config.toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrNotFound is returned when an explicitly requested file does not exist.
	ErrNotFound = errors.New("config: file not found")

	// ErrUnknownKey is returned when the file sets keys this version ignores.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned when a decoded value is out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Duration is a time.Duration decoded from strings like "10s" or "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full settings tree.
type Config struct {
	Exhaustive Exhaustive `toml:"exhaustive"`
	Genetic    Genetic    `toml:"genetic"`
	Output     Output     `toml:"output"`
}

// Exhaustive holds enumerator settings.
type Exhaustive struct {
	Budget  Duration `toml:"budget"`
	MaxSets int      `toml:"max_sets"`
}

// Genetic holds optimizer settings.
type Genetic struct {
	Population  int     `toml:"population"`
	Generations int     `toml:"generations"`
	Mutation    float64 `toml:"mutation"`
	Seed        int64   `toml:"seed"`
	Fitness     string  `toml:"fitness"`
}

// Output holds presentation settings.
type Output struct {
	Format   string `toml:"format"`
	OneBased bool   `toml:"one_based"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Exhaustive: Exhaustive{
			Budget: Duration{exhaustive.DefaultBudget},
		},
		Genetic: Genetic{
			Population:  genetic.DefaultPopulationSize,
			Generations: genetic.DefaultGenerations,
			Mutation:    genetic.DefaultMutationRate,
			Fitness:     genetic.FlatPenalty.String(),
		},
		Output: Output{
			Format: FormatText,
		},
	}
}

// DefaultPath returns where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName)
}

// Load reads the file at path over Default().
// An empty path means the XDG default; its absence yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(appName, fileName))
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", path, ErrNotFound)
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(string(data), cfg)
}

// Decode parses TOML text over base and validates the result.
func Decode(text string, base Config) (Config, error) {
	md, err := toml.Decode(text, &base)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("config: %s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	if err = base.Validate(); err != nil {
		return Config{}, err
	}

	return base, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: output.format=%q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Exhaustive.MaxSets < 0 {
		return fmt.Errorf("config: exhaustive.max_sets=%d: %w", c.Exhaustive.MaxSets, ErrInvalid)
	}
	opts, err := c.GeneticOptions()
	if err != nil {
		return fmt.Errorf("config: genetic.fitness: %v: %w", err, ErrInvalid)
	}
	if err = opts.Validate(); err != nil {
		return fmt.Errorf("config: genetic: %v: %w", err, ErrInvalid)
	}

	return nil
}

// GeneticOptions converts the [genetic] table into optimizer options.
func (c Config) GeneticOptions() (genetic.Options, error) {
	fit, err := genetic.ParseFitness(c.Genetic.Fitness)
	if err != nil {
		return genetic.Options{}, err
	}
	opts := genetic.DefaultOptions()
	opts.PopulationSize = c.Genetic.Population
	opts.Generations = c.Genetic.Generations
	opts.MutationRate = c.Genetic.Mutation
	opts.Seed = c.Genetic.Seed
	opts.Fitness = fit

	return opts, nil
}
