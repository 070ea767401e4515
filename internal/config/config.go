package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all settings for the CLI
type Config struct {
	Pile    PileConfig
	Profile ProfileConfig
	Log     LogConfig
}

// PileConfig holds default values for pile inputs not given on the command line
type PileConfig struct {
	ReductionFactor float64
	ZoneMultiplier  float64
	Convention      string // bgl or rl
}

// ProfileConfig controls the capacity versus depth sweep
type ProfileConfig struct {
	Step float64 // m
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load reads configuration from an optional file and GOPILE_* environment variables.
// With an empty path it looks for gopile.yaml in ., ./config and $HOME/.gopile.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gopile")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.gopile")
	}

	v.SetDefault("pile.reductionFactor", 0.5)
	v.SetDefault("pile.zoneMultiplier", 1.0)
	v.SetDefault("pile.convention", "bgl")
	v.SetDefault("profile.step", 0.5)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("GOPILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine, defaults apply
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
