// Package config defines the envision CLI configuration, its defaults,
// and validation.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the complete envision CLI configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Pixels  PixelConfig   `mapstructure:"pixels"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls how snapshots are rendered.
type OutputConfig struct {
	// Format is the default output format: "plain", "ansi", "json", or "json-pretty"
	Format string `mapstructure:"format"`
	// TrimTrailing trims trailing whitespace and blank lines from plain output
	TrimTrailing bool `mapstructure:"trim_trailing"`
}

// PixelConfig controls the assumed pixel size of a terminal cell, used
// when reporting window dimensions in pixels.
type PixelConfig struct {
	// CellWidth is the assumed width of one cell in pixels (default: 8)
	CellWidth int `mapstructure:"cell_width"`
	// CellHeight is the assumed height of one cell in pixels (default: 16)
	CellHeight int `mapstructure:"cell_height"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	// Name is a built-in theme name: "default", "light", or "high-contrast"
	Name string `mapstructure:"name"`
	// File is a path to a YAML theme file; takes precedence over Name when set
	File string `mapstructure:"file"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for log files; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:       "plain",
			TrimTrailing: true,
		},
		Pixels: PixelConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.trim_trailing", defaults.Output.TrimTrailing)

	viper.SetDefault("pixels.cell_width", defaults.Pixels.CellWidth)
	viper.SetDefault("pixels.cell_height", defaults.Pixels.CellHeight)

	viper.SetDefault("theme.name", defaults.Theme.Name)
	viper.SetDefault("theme.file", defaults.Theme.File)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// loading fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "envision")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".envision"
	}
	return filepath.Join(home, ".config", "envision")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
