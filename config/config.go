package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/vitalvas/shamirkit/field"
	"github.com/vitalvas/shamirkit/shamir"
	"github.com/vitalvas/shamirkit/xlogger"
)

// EnvPrefix is the prefix for environment overrides, e.g. SHAMIR_MODULUS.
const EnvPrefix = "SHAMIR"

var (
	ErrInvalidModulus = errors.New("config: modulus must be a decimal integer of at least 2")
	ErrInvalidWorkers = errors.New("config: workers must be at least 1")
	ErrInvalidOutput  = errors.New("config: output must be text or json")
)

type Config struct {
	// Modulus is the prime field modulus in decimal.
	Modulus string `yaml:"modulus" json:"modulus" default:"104729"`
	// Strategy is the wrong-point detection strategy: substitute or holdout.
	Strategy string `yaml:"strategy" json:"strategy" default:"substitute"`
	// Workers bounds how many share files are processed at once.
	Workers int `yaml:"workers" json:"workers" default:"4"`
	// Output is the report format: text or json.
	Output string `yaml:"output" json:"output" default:"text"`

	Logger xlogger.Config `yaml:"logger" json:"logger"`
}

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load builds a Config from default tags, then config files in order, then
// environment variables. Missing files are skipped.
func Load(options ...Option) (*Config, error) {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	conf := &Config{}

	if err := applyDefaults(conf); err != nil {
		return nil, fmt.Errorf("failed to apply default tags: %w", err)
	}

	for _, filename := range opts.files {
		if err := loadFromFile(conf, filename); err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(conf, opts.envPrefix); err != nil {
			return nil, fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return conf, nil
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Field(); err != nil {
		errs = append(errs, err)
	}

	if _, err := shamir.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers))
	}

	switch strings.ToLower(c.Output) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output))
	}

	return errors.Join(errs...)
}

// Field returns the prime field described by Modulus.
func (c *Config) Field() (*field.Field, error) {
	p, ok := new(big.Int).SetString(strings.TrimSpace(c.Modulus), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModulus, c.Modulus)
	}

	f, err := field.New(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModulus, c.Modulus)
	}

	return f, nil
}

// DetectionStrategy returns the parsed Strategy.
func (c *Config) DetectionStrategy() (shamir.Strategy, error) {
	return shamir.ParseStrategy(c.Strategy)
}
