package apportion

import (
	"fmt"
	"math/big"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/policy"
	"github.com/arloliu/apportion/strategy"
	"github.com/arloliu/apportion/types"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "APPORTION_"

// Source kinds accepted in SourceConfig.Kind.
const (
	SourceNone    = "none"
	SourceUniform = "uniform"
	SourceNoise   = "noise"
	SourceStatic  = "static"
)

const maxNoiseOctaves = 16

// ZeroSumConfig selects how a cancelling mixed-sign weight vector is resolved.
type ZeroSumConfig struct {
	// Strategy is "epsilon" (substitute a tiny divisor) or "resample" (redraw
	// the weights from the source).
	Strategy string `yaml:"strategy" env:"STRATEGY"`

	// MaxAttempts bounds the resample strategy. Ignored by epsilon.
	MaxAttempts int `yaml:"maxAttempts" env:"MAX_ATTEMPTS"`
}

// SourceConfig describes the weight source used by sampled operations.
type SourceConfig struct {
	// Kind is "none", "uniform", "noise" or "static".
	Kind string `yaml:"kind" env:"KIND"`

	// Min and Max bound uniform draws to [Min, Max).
	Min float64 `yaml:"min" env:"MIN"`
	Max float64 `yaml:"max" env:"MAX"`

	// Frequency is the lattice step between neighbouring noise slots.
	Frequency float64 `yaml:"frequency" env:"FREQUENCY"`

	// Octaves is the number of layered noise octaves (1-16).
	Octaves int `yaml:"octaves" env:"OCTAVES"`

	// Persistence is the amplitude ratio between noise octaves, in (0, 1].
	Persistence float64 `yaml:"persistence" env:"PERSISTENCE"`

	// Weights is the fixed vector of the static source.
	Weights []float64 `yaml:"weights,omitempty" env:"WEIGHTS" envSeparator:","`
}

// Config is the configuration of a Distributor.
//
// Fields are loaded from YAML and overridden from APPORTION_-prefixed
// environment variables by LoadConfig, e.g. APPORTION_MODE,
// APPORTION_ZERO_SUM_STRATEGY, APPORTION_SOURCE_KIND.
type Config struct {
	// Mode is the default allocation mode of Distribute: "exact" or "approximate".
	Mode types.Mode `yaml:"mode" env:"MODE"`

	// ZeroSum configures resolution of cancelling mixed-sign weights.
	ZeroSum ZeroSumConfig `yaml:"zeroSum" envPrefix:"ZERO_SUM_"`

	// Seed seeds the Distributor's random stream. 0 selects an entropy-backed
	// stream, which is not reproducible.
	Seed uint64 `yaml:"seed" env:"SEED"`

	// BigFloatPrecision is the mantissa precision, in bits, of *big.Float
	// shares computed by DistributeKind.
	BigFloatPrecision uint `yaml:"bigFloatPrecision" env:"BIGFLOAT_PRECISION"`

	// Source configures the weight source of sampled operations.
	Source SourceConfig `yaml:"source" envPrefix:"SOURCE_"`

	// Policies is the ordered policy chain applied to sampled weights. Names
	// are resolved against policy.Default.
	Policies []policy.Spec `yaml:"policies,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Mode: types.ModeExact,
		ZeroSum: ZeroSumConfig{
			Strategy:    strategy.NameEpsilon,
			MaxAttempts: strategy.DefaultMaxAttempts,
		},
		Seed:              0, // entropy-backed stream
		BigFloatPrecision: numeric.DefaultBigFloatPrecision,
		Source: SourceConfig{
			Kind:        SourceNone,
			Min:         0,
			Max:         1,
			Frequency:   0.1,
			Octaves:     3,
			Persistence: 0.5,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Mode == "" {
		cfg.Mode = defaults.Mode
	}
	if cfg.ZeroSum.Strategy == "" {
		cfg.ZeroSum.Strategy = defaults.ZeroSum.Strategy
	}
	if cfg.ZeroSum.MaxAttempts == 0 {
		cfg.ZeroSum.MaxAttempts = defaults.ZeroSum.MaxAttempts
	}
	if cfg.BigFloatPrecision == 0 {
		cfg.BigFloatPrecision = defaults.BigFloatPrecision
	}
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = defaults.Source.Kind
	}
	if cfg.Source.Min == 0 && cfg.Source.Max == 0 {
		cfg.Source.Min = defaults.Source.Min
		cfg.Source.Max = defaults.Source.Max
	}
	if cfg.Source.Frequency == 0 {
		cfg.Source.Frequency = defaults.Source.Frequency
	}
	if cfg.Source.Octaves == 0 {
		cfg.Source.Octaves = defaults.Source.Octaves
	}
	if cfg.Source.Persistence == 0 {
		cfg.Source.Persistence = defaults.Source.Persistence
	}
	// Note: Seed 0 is meaningful (entropy stream), so no default is applied
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Mode is "exact" or "approximate"
//   - ZeroSum.Strategy is "epsilon" or "resample"
//   - ZeroSum.MaxAttempts >= 1
//   - 0 < BigFloatPrecision <= big.MaxPrec
//   - Source.Kind is "none", "uniform", "noise" or "static"
//   - uniform: Min < Max
//   - noise: Frequency > 0, 1 <= Octaves <= 16, 0 < Persistence <= 1
//   - static: at least one weight
//   - every policy name is registered and its parameters are valid
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig (or ErrUnknownPolicy), nil if valid
func (cfg *Config) Validate() error {
	if err := cfg.Mode.Validate(); err != nil {
		return err
	}

	if _, err := strategy.ByName(cfg.ZeroSum.Strategy, cfg.ZeroSum.MaxAttempts); err != nil {
		return fmt.Errorf("%w: zeroSum.strategy: %w", types.ErrInvalidConfig, err)
	}

	if cfg.ZeroSum.MaxAttempts < 1 {
		return fmt.Errorf("%w: zeroSum.maxAttempts must be >= 1, got %d", types.ErrInvalidConfig, cfg.ZeroSum.MaxAttempts)
	}

	if cfg.BigFloatPrecision == 0 || cfg.BigFloatPrecision > big.MaxPrec {
		return fmt.Errorf("%w: bigFloatPrecision must be in [1, %d], got %d", types.ErrInvalidConfig, uint(big.MaxPrec), cfg.BigFloatPrecision)
	}

	if err := cfg.Source.validate(); err != nil {
		return err
	}

	if _, err := policy.Default.Build(cfg.Policies); err != nil {
		return err
	}

	return nil
}

func (s *SourceConfig) validate() error {
	switch s.Kind {
	case SourceNone:
		return nil
	case SourceUniform:
		if s.Min >= s.Max {
			return fmt.Errorf("%w: source.min (%v) must be < source.max (%v)", types.ErrInvalidConfig, s.Min, s.Max)
		}
	case SourceNoise:
		if s.Frequency <= 0 {
			return fmt.Errorf("%w: source.frequency must be > 0, got %v", types.ErrInvalidConfig, s.Frequency)
		}
		if s.Octaves < 1 || s.Octaves > maxNoiseOctaves {
			return fmt.Errorf("%w: source.octaves must be in [1, %d], got %d", types.ErrInvalidConfig, maxNoiseOctaves, s.Octaves)
		}
		if s.Persistence <= 0 || s.Persistence > 1 {
			return fmt.Errorf("%w: source.persistence must be in (0, 1], got %v", types.ErrInvalidConfig, s.Persistence)
		}
	case SourceStatic:
		if len(s.Weights) == 0 {
			return fmt.Errorf("%w: source.weights must not be empty for a static source", types.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source.kind %q", types.ErrInvalidConfig, s.Kind)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	mixedSource := cfg.Source.Kind == SourceNoise ||
		(cfg.Source.Kind == SourceUniform && cfg.Source.Min < 0 && cfg.Source.Max > 0)

	// Warn if a stochastic mixed-sign source is paired with epsilon substitution
	if cfg.ZeroSum.Strategy == strategy.NameEpsilon && mixedSource {
		logger.Warn(
			"epsilon zero-sum strategy with a mixed-sign weight source; cancelling draws will overflow integral kinds",
			"source", cfg.Source.Kind,
			"recommended", strategy.NameResample,
		)
	}

	// Warn if resample has nothing to draw from
	if cfg.ZeroSum.Strategy == strategy.NameResample && cfg.Source.Kind == SourceNone {
		logger.Warn(
			"resample zero-sum strategy without a weight source; caller-supplied weights cannot be redrawn",
			"strategy", cfg.ZeroSum.Strategy,
		)
	}

	// Warn if big.Float shares are less precise than float64
	if cfg.BigFloatPrecision < 53 {
		logger.Warn(
			"bigFloatPrecision is below float64 precision",
			"bigFloatPrecision", cfg.BigFloatPrecision,
			"recommended", numeric.DefaultBigFloatPrecision,
		)
	}
}

// LoadConfig reads a YAML file, applies environment overrides and defaults,
// and validates the result.
//
// Environment variables use the APPORTION_ prefix and override file values.
//
// Parameters:
//   - path: YAML file path; empty skips the file and starts from zero values
//
// Returns:
//   - Config: The loaded configuration
//   - error: Read, parse or validation error
//
// Example:
//
//	cfg, err := apportion.LoadConfig("apportion.yaml")
//	if err != nil { /* handle */ }
//	d, err := apportion.New(cfg)
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration for reproducible tests.
//
// The random stream is seeded, so exact field allocations and uniform
// sources behave the same on every run. Use DefaultConfig() in production.
//
// Returns:
//   - Config: Configuration with a fixed seed
//
// Example:
//
//	cfg := apportion.TestConfig()
//	cfg.Mode = apportion.ModeApproximate
//	d, err := apportion.New(cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1

	return cfg
}
