// Package config resolves runtime configuration for the influence CLI.
// Values come from .influence.yaml, INFLUENCE_* env vars and CLI flags,
// layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Default values.
const (
	DefaultCategory  = "IN"
	DefaultTolerance = 1e-9
	DefaultLogFormat = "text"
	EnvPrefix        = "INFLUENCE"
)

var (
	// ErrBadLogFormat indicates a log_format other than "text" or "json".
	ErrBadLogFormat = errors.New("config: log_format must be text or json")

	// ErrBadTolerance indicates a non-positive tolerance.
	ErrBadTolerance = errors.New("config: tolerance must be > 0")
)

// Config holds all runtime configuration for one CLI invocation.
type Config struct {
	// Network is the path of a network YAML file; empty selects the embedded sample.
	Network   string  `mapstructure:"network"`
	Category  string  `mapstructure:"category"`
	MaxDepth  int     `mapstructure:"max_depth"`
	MaxSteps  int     `mapstructure:"max_steps"`
	Tolerance float64 `mapstructure:"tolerance"`
	LogFormat string  `mapstructure:"log_format"`
	Verbose   bool    `mapstructure:"verbose"`
	// Trace prints finished spans to stderr.
	Trace bool `mapstructure:"trace"`
}

// New returns a viper instance wired for the influence CLI: defaults,
// INFLUENCE_* environment lookup, and the config file cfgFile, or
// .influence.yaml in the working or home directory when empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".influence")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the built-in default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("network", "")
	v.SetDefault("category", DefaultCategory)
	v.SetDefault("max_depth", -1)
	v.SetDefault("max_steps", -1)
	v.SetDefault("tolerance", DefaultTolerance)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("verbose", false)
	v.SetDefault("trace", false)
}

// Load reads the config file (a missing default file is not an error),
// unmarshals v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: read: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: %g", ErrBadTolerance, c.Tolerance)
	}

	return nil
}
