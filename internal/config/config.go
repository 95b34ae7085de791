// SPDX-License-Identifier: MIT

// Package config loads srgcat settings from srgcat.yaml, SRGCAT_* environment
// variables and command-line overrides, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/srgcat/internal/logging"
)

// Catalog formats.
const (
	FormatBrouwer = "brouwer"
	FormatYAML    = "yaml"
	FormatSQLite  = "sqlite"
)

// Config is the full srgcat configuration.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Feasible FeasibleConfig `mapstructure:"feasible"`
	Build    BuildConfig    `mapstructure:"build"`
	Store    StoreConfig    `mapstructure:"store"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      logging.Config `mapstructure:"log"`
}

// CatalogConfig locates the reference catalog.
type CatalogConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// FeasibleConfig selects the feasible tuples: a file, or an enumeration range.
type FeasibleConfig struct {
	Path string `mapstructure:"path"`
	VMin int    `mapstructure:"vmin"`
	VMax int    `mapstructure:"vmax"`
}

// BuildConfig tunes the registry build.
type BuildConfig struct {
	// Workers is the classification fan-out; 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// StoreConfig locates the SQLite store; empty disables it.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig locates the Prometheus textfile; empty disables it.
type MetricsConfig struct {
	Path string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	def := logging.DefaultConfig()

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.format", FormatBrouwer)
	v.SetDefault("feasible.path", "")
	v.SetDefault("feasible.vmin", 1)
	v.SetDefault("feasible.vmax", 300)
	v.SetDefault("build.workers", 1)
	v.SetDefault("store.path", "")
	v.SetDefault("metrics.path", "")
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.output", def.Output)
}

// Load reads file (or srgcat.yaml in . and $HOME/.srgcat when file is
// empty), applies SRGCAT_* environment variables and then overrides, keyed
// by dotted config key. A missing default config file is not an error; a
// missing explicit file is.
func Load(file string, overrides map[string]interface{}) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("srgcat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.srgcat")
	}

	v.SetEnvPrefix("SRGCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Catalog.Format {
	case FormatBrouwer, FormatYAML, FormatSQLite:
	default:
		return fmt.Errorf("config: catalog.format must be brouwer, yaml or sqlite, got %q", c.Catalog.Format)
	}
	if c.Feasible.VMin < 1 {
		return fmt.Errorf("config: feasible.vmin must be ≥ 1, got %d", c.Feasible.VMin)
	}
	if c.Feasible.VMax < c.Feasible.VMin {
		return fmt.Errorf("config: feasible.vmax %d below vmin %d", c.Feasible.VMax, c.Feasible.VMin)
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("config: build.workers must be ≥ 0, got %d", c.Build.Workers)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
