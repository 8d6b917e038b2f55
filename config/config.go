// Package config provides configuration management for olsim.
// Values are resolved in the order defaults -> YAML file -> OLSIM_*
// environment variables; the CLI applies its flags last.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/format"
	"github.com/arloliu/olsim/internal/logging"
	"github.com/arloliu/olsim/model"
	"github.com/arloliu/olsim/regression"
	"github.com/arloliu/olsim/simulation"
	"github.com/arloliu/olsim/summary"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults of the reference experiment.
const (
	DefaultNumSimulations = 1000
	DefaultSampleSize     = 100
	DefaultIntercept      = 2.0
	DefaultSlope          = 3.0
	DefaultNoiseStdDev    = 1.0
)

// Config is the top-level olsim configuration.
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
}

// SimulationConfig describes one experiment.
type SimulationConfig struct {
	NumSimulations int     `json:"num_simulations" yaml:"num_simulations" env:"OLSIM_NUM_SIMULATIONS"`
	SampleSize     int     `json:"sample_size" yaml:"sample_size" env:"OLSIM_SAMPLE_SIZE"`
	Intercept      float64 `json:"intercept" yaml:"intercept" env:"OLSIM_INTERCEPT"`
	Slope          float64 `json:"slope" yaml:"slope" env:"OLSIM_SLOPE"`
	NoiseStdDev    float64 `json:"noise_std_dev" yaml:"noise_std_dev" env:"OLSIM_NOISE_STD_DEV"`

	// Seed fixes the random stream. Nil draws a fresh seed per run.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"OLSIM_SEED"`

	// DegeneratePolicy is "abort", "skip" or "propagate".
	DegeneratePolicy string `json:"degenerate_policy" yaml:"degenerate_policy" env:"OLSIM_DEGENERATE_POLICY"`
}

// OutputConfig controls presentation and frame output.
type OutputConfig struct {
	Bins int `json:"bins" yaml:"bins" env:"OLSIM_BINS"`
	// Compression of written frames: "none", "zstd", "s2" or "lz4".
	Compression string `json:"compression" yaml:"compression" env:"OLSIM_COMPRESSION"`
}

// LoggingConfig controls the log level.
type LoggingConfig struct {
	// Level is "error", "warn", "info", "debug" or "trace".
	Level string `json:"level" yaml:"level" env:"OLSIM_LOG_LEVEL"`
}

// Default returns the reference experiment configuration.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			NumSimulations:   DefaultNumSimulations,
			SampleSize:       DefaultSampleSize,
			Intercept:        DefaultIntercept,
			Slope:            DefaultSlope,
			NoiseStdDev:      DefaultNoiseStdDev,
			DegeneratePolicy: simulation.PolicyAbort.String(),
		},
		Output: OutputConfig{
			Bins:        summary.DefaultBins,
			Compression: "none",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load resolves defaults, the YAML file at path and environment overrides.
// An empty path skips the file; a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// ParseEnv overrides cfg with the OLSIM_* environment variables that are set.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks that the configuration describes a runnable experiment.
// All problems are reported together.
func (c *Config) Validate() error {
	var problems []error

	if c.Simulation.NumSimulations < 1 {
		problems = append(problems, fmt.Errorf("%w: num_simulations must be >= 1, got %d",
			errs.ErrInvalidTrialCount, c.Simulation.NumSimulations))
	}
	if c.Simulation.SampleSize < regression.MinSampleSize {
		problems = append(problems, fmt.Errorf("%w: sample_size must be >= %d, got %d",
			errs.ErrInvalidSampleSize, regression.MinSampleSize, c.Simulation.SampleSize))
	}
	if err := c.Params().Validate(); err != nil {
		problems = append(problems, err)
	}
	if _, err := simulation.ParsePolicy(c.Simulation.DegeneratePolicy); err != nil {
		problems = append(problems, err)
	}
	if c.Output.Bins < 1 {
		problems = append(problems, fmt.Errorf("bins must be >= 1, got %d", c.Output.Bins))
	}
	if _, ok := format.ParseCompression(c.Output.Compression); !ok {
		problems = append(problems, fmt.Errorf("invalid compression: %s (valid: none, zstd, s2, lz4)", c.Output.Compression))
	}
	if !logging.ValidLevel(c.Logging.Level) {
		problems = append(problems, fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace)", c.Logging.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", errs.ErrInvalidInput, errors.Join(problems...))
	}

	return nil
}

// Params returns the generative parameters.
func (c *Config) Params() model.Params {
	return model.Params{
		Intercept:   c.Simulation.Intercept,
		Slope:       c.Simulation.Slope,
		NoiseStdDev: c.Simulation.NoiseStdDev,
	}
}

// Policy returns the parsed degenerate-trial policy.
func (c *Config) Policy() (simulation.Policy, error) {
	return simulation.ParsePolicy(c.Simulation.DegeneratePolicy)
}

// Compression returns the parsed frame compression.
func (c *Config) Compression() (format.CompressionType, error) {
	ct, ok := format.ParseCompression(c.Output.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: invalid compression: %s", errs.ErrInvalidInput, c.Output.Compression)
	}

	return ct, nil
}

// RunnerOptions returns the simulation options the configuration implies.
func (c *Config) RunnerOptions() ([]simulation.Option, error) {
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}

	opts := []simulation.Option{simulation.WithDegeneratePolicy(policy)}
	if c.Simulation.Seed != nil {
		opts = append(opts, simulation.WithSeed(*c.Simulation.Seed))
	}

	return opts, nil
}
