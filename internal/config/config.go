// Package config provides Viper-based configuration loading for raidcalc.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/raidcalc/internal/game/dice"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the species and move YAML directories.
type ContentConfig struct {
	SpeciesDir string `mapstructure:"species_dir"`
	MovesDir   string `mapstructure:"moves_dir"`
}

// BattleConfig holds defaults applied to every battle.
type BattleConfig struct {
	// DefaultRoll is the roll bias for turns that do not name one: "min", "avg", or "max".
	DefaultRoll string `mapstructure:"default_roll"`
}

// Bias returns DefaultRoll parsed as a dice.Bias.
//
// Precondition: DefaultRoll passed Validate.
func (b BattleConfig) Bias() dice.Bias {
	bias, _ := dice.ParseBias(b.DefaultRoll)
	return bias
}

// OptimizerConfig holds branch optimizer settings.
type OptimizerConfig struct {
	// MaxMarkedTurns bounds the optimizer-marked turns one request may carry.
	MaxMarkedTurns int `mapstructure:"max_marked_turns"`
	// ObjectiveScript is an optional Lua file defining score(summary).
	ObjectiveScript string `mapstructure:"objective_script"`
	// InstructionLimit is the per-call Lua opcode budget. 0 selects the
	// scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Content   ContentConfig   `mapstructure:"content"`
	Battle    BattleConfig    `mapstructure:"battle"`
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	errs := []error{
		validateLogging(c.Logging),
		validateContent(c.Content),
		validateBattle(c.Battle),
		validateOptimizer(c.Optimizer),
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []error
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format))
	}
	return errors.Join(errs...)
}

func validateContent(c ContentConfig) error {
	var errs []error
	if c.SpeciesDir == "" {
		errs = append(errs, errors.New("content.species_dir must not be empty"))
	}
	if c.MovesDir == "" {
		errs = append(errs, errors.New("content.moves_dir must not be empty"))
	}
	return errors.Join(errs...)
}

func validateBattle(b BattleConfig) error {
	switch b.DefaultRoll {
	case "min", "avg", "max":
		return nil
	}
	return fmt.Errorf("battle.default_roll must be one of [min, avg, max], got %q", b.DefaultRoll)
}

func validateOptimizer(o OptimizerConfig) error {
	var errs []error
	if o.MaxMarkedTurns < 0 {
		errs = append(errs, fmt.Errorf("optimizer.max_marked_turns must be >= 0, got %d", o.MaxMarkedTurns))
	}
	if o.InstructionLimit < 0 {
		errs = append(errs, fmt.Errorf("optimizer.instruction_limit must be >= 0, got %d", o.InstructionLimit))
	}
	return errors.Join(errs...)
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadDefaults builds a Config from defaults and environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func LoadDefaults() (Config, error) {
	return LoadFromViper(newViper())
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

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with RAIDCALC_ prefix
	v.SetEnvPrefix("RAIDCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.species_dir", "content/species")
	v.SetDefault("content.moves_dir", "content/moves")

	v.SetDefault("battle.default_roll", "avg")

	v.SetDefault("optimizer.max_marked_turns", 8)
	v.SetDefault("optimizer.objective_script", "")
	v.SetDefault("optimizer.instruction_limit", 100_000)
}
