// Package config holds the settings for anglectl. Settings start from
// Default, are overlaid by a YAML file and finally by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/tigerbot-team/angle/pkg/angle"
	"github.com/tigerbot-team/angle/pkg/dial"
)

// DefaultPath is read when no --config flag is given. It is fine for it not
// to exist.
const DefaultPath = "anglectl.yaml"

// Dial images are square; these bound the side length in pixels.
const (
	MinDialSize = 16
	MaxDialSize = 4096
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidDialSize = errors.New("invalid dial size")
)

type Config struct {
	// Unit is used both for reading numbers from the command line and for
	// printing results.
	Unit Unit `yaml:"unit"`
	// Precision is the number of decimal places printed.
	Precision int `yaml:"precision"`
	// CloseToThreshold is the default threshold for "close", in Unit.
	CloseToThreshold float64 `yaml:"close_to_threshold"`

	Dial DialConfig `yaml:"dial"`
}

type DialConfig struct {
	Size   int    `yaml:"size"`
	Output string `yaml:"output"`
}

// InvalidConfigError lists every problem found by Validate.
type InvalidConfigError struct {
	Problems []error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.Problems...))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

func Default() Config {
	return Config{
		Unit:             Degrees,
		Precision:        4,
		CloseToThreshold: 1,
		Dial: DialConfig{
			Size:   dial.DefaultSize,
			Output: "dial.png",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error and
// yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config that is in use, so it can be inspected or used as
// a starting point.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func (c Config) Validate() error {
	var problems []error
	if err := c.Unit.Validate(); err != nil {
		problems = append(problems, err)
	}
	if c.Precision < 0 || c.Precision > 17 {
		problems = append(problems, fmt.Errorf("precision %d must be between 0 and 17", c.Precision))
	}
	if c.CloseToThreshold < 0 {
		problems = append(problems, fmt.Errorf("close_to_threshold %v must not be negative", c.CloseToThreshold))
	}
	if err := ValidateDialSize(c.Dial.Size); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return &InvalidConfigError{Problems: problems}
	}
	return nil
}

// ValidateDialSize checks a dial side length, whether it came from the file
// or from the command line.
func ValidateDialSize(size int) error {
	if size < MinDialSize || size > MaxDialSize {
		return fmt.Errorf("%w: %d must be between %d and %d", ErrInvalidDialSize, size, MinDialSize, MaxDialSize)
	}
	return nil
}

// Threshold returns CloseToThreshold as an angle.
func (c Config) Threshold() angle.Angle {
	return c.Unit.Angle(c.CloseToThreshold)
}
