package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jordanro2/edgeslide/pkg/slide"
)

// DefaultFile is the tuning file looked up when no path is given
const DefaultFile = "edgeslide.yaml"

// Default values for Config, matching the original tool's dialog
const (
	DefaultDistance = 0.01
	DefaultMethod   = "average"
)

// Config holds the tunable analysis constants and the dialog defaults.
// All fields are optional in the file; missing fields keep defaults.
type Config struct {
	Distance float64 `yaml:"distance"`
	UseEven  bool    `yaml:"use_even"`
	UseClamp bool    `yaml:"use_clamp"`
	Flipped  bool    `yaml:"flipped"`
	Method   string  `yaml:"method"`
	Unit     string  `yaml:"unit"`

	NonQuadScale          float64 `yaml:"non_quad_scale"`
	MirrorMissingOpposite bool    `yaml:"mirror_missing_opposite"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() Config {
	return Config{
		Distance:              DefaultDistance,
		UseClamp:              true,
		Method:                DefaultMethod,
		NonQuadScale:          slide.DefaultNonQuadScale,
		MirrorMissingOpposite: true,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses a tuning file. An empty path means DefaultFile;
// a missing file returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are usable
func Validate(cfg *Config) error {
	if cfg.NonQuadScale <= 0 || cfg.NonQuadScale > 1 {
		return ValidationError{Field: "non_quad_scale", Message: "must be in (0, 1]"}
	}
	if _, err := slide.ParseMethod(cfg.Method); err != nil {
		return ValidationError{Field: "method", Message: err.Error()}
	}
	return nil
}

// SlideOptions converts the config into analysis options
func (c *Config) SlideOptions() (slide.Options, error) {
	method, err := slide.ParseMethod(c.Method)
	if err != nil {
		return slide.Options{}, err
	}
	return slide.Options{
		Method:                method,
		NonQuadScale:          c.NonQuadScale,
		MirrorMissingOpposite: c.MirrorMissingOpposite,
	}, nil
}
