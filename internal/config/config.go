// Package config loads the optional application configuration that sits
// underneath the command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration. Every value here is a
// default; command-line flags override all of it.
type Config struct {
	// ColorsDir holds the per-category label color files
	// (languages.toml, editors.toml, operating_systems.toml).
	ColorsDir string `mapstructure:"colors_dir"`

	// Graphs and Totals are the default category selector strings used
	// when the matching flags are not given.
	Graphs string `mapstructure:"graphs"`
	Totals string `mapstructure:"totals"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wakaview", "config.yaml")
}

// Load reads configuration from the given file and WAKAVIEW_* environment
// variables. An empty path falls back to the default location; a missing
// file at the default location is fine, a missing file at an explicit path
// is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	setDefaults(v)

	v.SetEnvPrefix("WAKAVIEW")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("colors_dir", "")
	v.SetDefault("graphs", "")
	v.SetDefault("totals", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", defaultLogFile())
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wakaview", "logs", "app.log")
}
