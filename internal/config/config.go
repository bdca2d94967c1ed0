// Package config loads ls-coords settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/litescript/ls-coords/internal/obliquity"
)

// EnvPrefix prefixes environment overrides: LSCOORDS_LOG_LEVEL → log.level.
const EnvPrefix = "LSCOORDS"

// Config holds all application configuration.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Conversion ConversionConfig `mapstructure:"conversion"`
	Output     OutputConfig     `mapstructure:"output"`
	Site       SiteConfig       `mapstructure:"site"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ConversionConfig struct {
	Equinox string `mapstructure:"equinox"`
	// Obliquity overrides the equinox when non-zero (degrees).
	Obliquity float64 `mapstructure:"obliquity"`
}

// Provider returns the obliquity provider selected by the configuration.
func (c ConversionConfig) Provider() (obliquity.Provider, error) {
	if c.Obliquity != 0 {
		return obliquity.Fixed{Degrees: c.Obliquity}, nil
	}
	e, err := obliquity.ParseEquinox(c.Equinox)
	if err != nil {
		return nil, err
	}
	return obliquity.ForEquinox(e), nil
}

type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Notation string `mapstructure:"notation"`
}

// SiteConfig is the default observer location used by the geo command.
type SiteConfig struct {
	Name      string  `mapstructure:"name"`
	Longitude float64 `mapstructure:"longitude"`
	Latitude  float64 `mapstructure:"latitude"`
}

// Load reads configuration from an optional ls-coords.yaml and the environment.
// An explicit path, when non-empty, must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("ls-coords")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ls-coords")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
// It panics if the built-in defaults do not decode into Config.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode built-in defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("conversion.equinox", "j2000")
	v.SetDefault("conversion.obliquity", 0.0)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.notation", "plain")
	v.SetDefault("site.name", "")
	v.SetDefault("site.longitude", 0.0)
	v.SetDefault("site.latitude", 0.0)
}

// Validate checks that configuration values are known and sane.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if _, err := obliquity.ParseEquinox(c.Conversion.Equinox); err != nil {
		errs = append(errs, fmt.Sprintf("conversion.equinox: %v", err))
	}
	if o := c.Conversion.Obliquity; math.IsNaN(o) || o < 0 || o >= 90 {
		errs = append(errs, fmt.Sprintf("conversion.obliquity must be in [0, 90), got %v", o))
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be text or json, got %q", c.Output.Format))
	}
	switch strings.ToLower(c.Output.Notation) {
	case "plain", "sexa":
	default:
		errs = append(errs, fmt.Sprintf("output.notation must be plain or sexa, got %q", c.Output.Notation))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
