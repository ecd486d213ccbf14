// Package config provides Viper-based configuration loading for the rules engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. RULES_DICE_SEED.
const EnvPrefix = "RULES"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RulesConfig selects the SRD tables.
type RulesConfig struct {
	// Dir is a directory holding progression.yaml, spell_slots.yaml, skills.yaml
	// and classes/. Empty selects the embedded tables.
	Dir string `mapstructure:"dir"`
	// ItemsDir is a directory of item catalog YAML files. Empty selects the embedded catalog.
	ItemsDir string `mapstructure:"items_dir"`
	// AverageHP selects fixed average hit point gains on level up instead of rolling.
	AverageHP bool `mapstructure:"average_hp"`
}

// DiceConfig selects the randomness source and roll history size.
type DiceConfig struct {
	// Source is "crypto" or "seeded".
	Source string `mapstructure:"source"`
	// Seed is used only by the seeded source.
	Seed uint64 `mapstructure:"seed"`
	// HistoryCapacity bounds the roll history ring buffer; 0 disables history.
	HistoryCapacity int `mapstructure:"history_capacity"`
}

// MetricsConfig holds prometheus counter settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRules(c.Rules); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDice(c.Dice); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMetrics(c.Metrics); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateRules(r RulesConfig) error {
	var errs []string
	for key, dir := range map[string]string{"rules.dir": r.Dir, "rules.items_dir": r.ItemsDir} {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s %q: %v", key, dir, err))
			continue
		}
		if !info.IsDir() {
			errs = append(errs, fmt.Sprintf("%s %q is not a directory", key, dir))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDice(d DiceConfig) error {
	var errs []string
	validSources := map[string]bool{"crypto": true, "seeded": true}
	if !validSources[d.Source] {
		errs = append(errs, fmt.Sprintf("dice.source must be one of [crypto, seeded], got %q", d.Source))
	}
	if d.HistoryCapacity < 0 {
		errs = append(errs, fmt.Sprintf("dice.history_capacity must be >= 0, got %d", d.HistoryCapacity))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateMetrics(m MetricsConfig) error {
	if m.Enabled && m.Namespace == "" {
		return errors.New("metrics.namespace must not be empty when metrics are enabled")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with RULES_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration Load produces with no file and no environment.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Rules:   RulesConfig{AverageHP: true},
		Dice:    DiceConfig{Source: "crypto", HistoryCapacity: 100},
		Metrics: MetricsConfig{Namespace: "rules"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("rules.dir", d.Rules.Dir)
	v.SetDefault("rules.items_dir", d.Rules.ItemsDir)
	v.SetDefault("rules.average_hp", d.Rules.AverageHP)

	v.SetDefault("dice.source", d.Dice.Source)
	v.SetDefault("dice.seed", d.Dice.Seed)
	v.SetDefault("dice.history_capacity", d.Dice.HistoryCapacity)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
}
