package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"gopkg.in/yaml.v2"
	"math/rand/v2"
	"os"
	"strconv"
	"time"
)

// settings is everything a run needs. A --config file holds the same keys.
type settings struct {
	game.Config `yaml:",inline"`

	Director directorValue `yaml:"director"`
	Delay    time.Duration `yaml:"delay"`
	Plain    bool          `yaml:"plain"`
	LogLevel string        `yaml:"log_level"`
	LogFile  string        `yaml:"log_file"`
}

func defaultSettings() settings {
	return settings{
		Config:   game.NewConfig(),
		Director: "none",
		Delay:    200 * time.Millisecond,
		LogLevel: "info",
	}
}

// loadSettings reads a YAML settings file over the values already in s
func loadSettings(path string, s *settings) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(contents, s); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

var argNames = [3]string{"width", "height", "bombs"}

// applyArgs sets the board from the positional <width> <height> <bombs>
func applyArgs(args []string, config *game.Config) error {
	if len(args) == 0 {
		return nil
	}

	var values [3]int
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Errorf("invalid %s %q: not a whole number", argNames[i], arg)
		}
		values[i] = value
	}

	config.Width, config.Height, config.Bombs = values[0], values[1], values[2]
	return nil
}

// resolveSettings layers defaults, the config file, positional arguments and
// finally any flag given explicitly
func resolveSettings(flags *pflag.FlagSet, opts *options, args []string) (settings, error) {
	resolved := defaultSettings()

	if opts.configPath != "" {
		if err := loadSettings(opts.configPath, &resolved); err != nil {
			return resolved, err
		}
	}

	if err := applyArgs(args, &resolved.Config); err != nil {
		return resolved, err
	}

	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "width":
			resolved.Width = opts.Width
		case "height":
			resolved.Height = opts.Height
		case "bombs":
			resolved.Bombs = opts.Bombs
		case "seed":
			resolved.Seed = opts.Seed
		case "director":
			resolved.Director = opts.Director
		case "delay":
			resolved.Delay = opts.Delay
		case "plain":
			resolved.Plain = opts.Plain
		case "log-level":
			resolved.LogLevel = opts.LogLevel
		case "log-file":
			resolved.LogFile = opts.LogFile
		}
	})

	return resolved, nil
}

type directorValue string

var directors = map[directorValue]func(rng *rand.Rand) game.Director{
	"none": nil,
	"random": func(rng *rand.Rand) game.Director {
		return random.New(rng)
	},
	"constraint": func(rng *rand.Rand) game.Director {
		return constraint.New(rng)
	},
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if _, isValid := directors[directorValue(name)]; !isValid {
		return fmt.Errorf("invalid director %q (choose none, random or constraint)", name)
	}
	*value = directorValue(name)
	return nil
}

func (value *directorValue) Type() string {
	return "director"
}

func (value *directorValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return value.Set(name)
}

// build returns the computer player, or nil when a person plays
func (value directorValue) build(seed uint64) game.Director {
	newDirector := directors[value]
	if newDirector == nil {
		return nil
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return newDirector(rand.New(rand.NewPCG(seed, ^seed)))
}
