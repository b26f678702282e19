// Package config provides layered configuration for changelog-split using koanf.
// Configuration is loaded with priority: command-line overrides > environment
// variables (CHANGELOG_SPLIT_*) > project config (.changelog-split.yml or .json)
// > defaults. The defaults reproduce the tool's fixed behaviour: read
// CHANGELOG.md and write into temp-changelogs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CHANGELOG_SPLIT_"

// Configuration represents the changelog-split configuration
type Configuration struct {
	// InputPath is the changelog document to split.
	InputPath string `koanf:"input_path" validate:"required"`
	// OutputDir receives one file per release entry. Created if missing.
	OutputDir string `koanf:"output_dir" validate:"required"`
	// Extension is appended to each slug to form the file name.
	Extension string `koanf:"extension" validate:"required,startswith=."`
	// Timezone is an IANA name ("UTC", "Europe/Berlin") or "Local".
	// Parsed dates are midnight in this zone; the fallback clock reports in it too.
	Timezone string `koanf:"timezone" validate:"required"`
	// OnCollision is one of overwrite, warn, error.
	OnCollision string `koanf:"on_collision" validate:"oneof=overwrite warn error"`
	// EscapeFrontMatter renders front-matter values as escaped YAML strings.
	EscapeFrontMatter bool   `koanf:"escape_front_matter"`
	LogLevel          string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist when set.
	// When empty the first existing ProjectConfigPaths entry is used.
	ConfigPath string
	// Overrides are applied last, keyed like the config file (e.g. "output_dir").
	Overrides map[string]interface{}
}

// Load loads configuration from defaults, the project config file and the
// environment. Priority: Environment variables > Project config > Defaults
func Load(configPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: configPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying override %s: %w", key, err)
		}
	}

	return finalizeConfig(k, sourceName(opts.ConfigPath))
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the explicit config file, or the first project
// config found in the working directory.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		path = FindProjectConfig()
		if path == "" {
			return nil
		}
	} else if !fileExists(path) {
		return &ValidationError{FilePath: path, Message: "config file not found"}
	}

	if isJSON(path) {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	if err := CheckYAMLSyntax(data, path); err != nil {
		return fmt.Errorf("validating YAML syntax: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, source string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Configuration) Location() (*time.Location, error) {
	if strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ToMap returns the configuration keyed like the config file.
func (c *Configuration) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"input_path":          c.InputPath,
		"output_dir":          c.OutputDir,
		"extension":           c.Extension,
		"timezone":            c.Timezone,
		"on_collision":        c.OnCollision,
		"escape_front_matter": c.EscapeFrontMatter,
		"log_level":           c.LogLevel,
	}
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_SPLIT_OUTPUT_DIR -> output_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func sourceName(path string) string {
	if path == "" {
		return "config"
	}
	return path
}
