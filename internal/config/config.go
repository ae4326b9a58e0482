// Package config loads globalnav settings from defaults, an optional
// config file, and environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Recognized values for results.action.
const (
	ActionPresentChoices = "present-choices"
	ActionTakeFirst      = "take-first"
)

// DefaultHistoryCapacity bounds the jump history unless configured.
const DefaultHistoryCapacity = 50

// Config holds all globalnav settings.
type Config struct {
	Global  GlobalConfig  `mapstructure:"global"`
	History HistoryConfig `mapstructure:"history"`
	Results ResultsConfig `mapstructure:"results"`
	Log     LogConfig     `mapstructure:"log"`
}

// GlobalConfig configures the external tag tool invocation.
type GlobalConfig struct {
	// Path to the global executable; looked up on PATH when bare.
	Path string `mapstructure:"path"`
}

// HistoryConfig configures the jump history.
type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// ResultsConfig configures what happens when a lookup yields candidates.
type ResultsConfig struct {
	// Action on multiple results: present-choices or take-first.
	Action string `mapstructure:"action"`
	// ShowElapsed logs the wall time of each lookup.
	ShowElapsed bool `mapstructure:"show_elapsed"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Path returns the config file location for a workspace root.
func Path(rootDir string) string {
	return filepath.Join(rootDir, ".globalnav", "config.yaml")
}

// Load loads configuration with the following priority (highest first):
// environment variables (GLOBALNAV_*), .globalnav/config.yaml under the
// workspace root, built-in defaults. A missing config file is fine.
func Load(rootDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(rootDir, ".globalnav"))

	v.SetEnvPrefix("GLOBALNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("global.path", "global")
	v.SetDefault("history.capacity", DefaultHistoryCapacity)
	v.SetDefault("results.action", ActionPresentChoices)
	v.SetDefault("results.show_elapsed", false)
	v.SetDefault("log.level", "info")
}

// Validate checks enum values and bounds.
func Validate(cfg *Config) error {
	switch cfg.Results.Action {
	case ActionPresentChoices, ActionTakeFirst:
	default:
		return fmt.Errorf("results.action must be %q or %q, got %q",
			ActionPresentChoices, ActionTakeFirst, cfg.Results.Action)
	}
	if cfg.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive, got %d", cfg.History.Capacity)
	}
	if cfg.Global.Path == "" {
		return fmt.Errorf("global.path must not be empty")
	}
	return nil
}
