// Package config provides Viper-based configuration loading for the converter tools.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ConverterConfig holds dump conversion settings.
type ConverterConfig struct {
	// CodeLimit is the maximum byte length kept for any embedded source text
	// (event code, creation code). Zero disables truncation.
	CodeLimit int `mapstructure:"code_limit"`
}

// ExtractorConfig holds settings for locating and running the external
// extraction tool.
type ExtractorConfig struct {
	// ToolPath is an explicit path to the extraction executable. Empty means
	// "search PATH and conventional install locations".
	ToolPath string `mapstructure:"tool_path"`
	// Timeout bounds a single dump invocation of the extraction tool.
	Timeout time.Duration `mapstructure:"timeout"`
	// KeepDumpDir, when non-empty, receives a copy of the staged dump tree
	// after a successful extraction.
	KeepDumpDir string `mapstructure:"keep_dump_dir"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	// Debounce is how long the watcher waits after the last filesystem event
	// before triggering a re-conversion.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Converter ConverterConfig `mapstructure:"converter"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Watch     WatchConfig     `mapstructure:"watch"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConverter(c.Converter); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateExtractor(c.Extractor); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateWatch(c.Watch); err != nil {
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

func validateConverter(c ConverterConfig) error {
	if c.CodeLimit < 0 {
		return fmt.Errorf("converter.code_limit must be >= 0, got %d", c.CodeLimit)
	}
	return nil
}

func validateExtractor(e ExtractorConfig) error {
	if e.Timeout <= 0 {
		return fmt.Errorf("extractor.timeout must be positive, got %s", e.Timeout)
	}
	return nil
}

func validateWatch(w WatchConfig) error {
	if w.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", w.Debounce)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the file
// and builds the configuration from defaults and environment alone.
//
// Precondition: path, when non-empty, must point to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with UMTCONV_ prefix
	v.SetEnvPrefix("UMTCONV")
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("converter.code_limit", 0)

	v.SetDefault("extractor.tool_path", "")
	v.SetDefault("extractor.timeout", "5m")
	v.SetDefault("extractor.keep_dump_dir", "")

	v.SetDefault("watch.debounce", "100ms")
}
