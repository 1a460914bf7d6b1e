// Package config handles animfind configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the optional config file in the project root.
	ConfigFile = ".animfind.yaml"
	// EnvFile is the name of the optional dotenv file in the project root.
	EnvFile = ".env"

	// EnvProject overrides the project directory.
	EnvProject = "ANIMFIND_PROJECT"
	// EnvLogLevel overrides log.level.
	EnvLogLevel = "ANIMFIND_LOG_LEVEL"
	// EnvFormat overrides output.format.
	EnvFormat = "ANIMFIND_FORMAT"
)

// ErrInvalidGlob is returned when search.include or search.exclude holds a
// pattern doublestar cannot parse.
var ErrInvalidGlob = errors.New("invalid glob")

// Config represents the animfind configuration.
type Config struct {
	Search  SearchConfig `yaml:"search"`
	Output  OutputConfig `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
	Presets []string     `yaml:"presets,omitempty"`
}

// SearchConfig controls which assets are enumerated and how they are parsed.
type SearchConfig struct {
	Include          []string `yaml:"include,omitempty"`
	Exclude          []string `yaml:"exclude,omitempty"`
	ObjectReferences bool     `yaml:"object_references"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	Format    string `yaml:"format"`
	ShowAsset bool   `yaml:"show_asset"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the configuration from a file. Keys missing from the file keep
// their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the include and exclude globs. Blank entries are ignored.
func (c *Config) Validate() error {
	for key, globs := range map[string][]string{
		"search.include": c.Search.Include,
		"search.exclude": c.Search.Exclude,
	} {
		for _, g := range globs {
			pattern := strings.TrimPrefix(strings.TrimSpace(filepath.ToSlash(g)), "./")
			if pattern != "" && !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("%s: %w %q", key, ErrInvalidGlob, g)
			}
		}
	}

	return nil
}

// LoadProject loads the configuration for the project at root.
//
// The .env file in root is loaded first without overriding variables that
// are already set. The config file is explicitPath when given, otherwise
// root/.animfind.yaml if it exists. Environment overrides are applied last.
func LoadProject(root, explicitPath string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(root, EnvFile)) // Best effort: .env may not exist

	path := explicitPath
	if path == "" {
		candidate := filepath.Join(root, ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := Default()

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.Log.Level = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvFormat); ok && strings.TrimSpace(v) != "" {
		c.Output.Format = strings.TrimSpace(v)
	}
}

// ProjectDir returns the directory to start project discovery from:
// flagValue if set, then $ANIMFIND_PROJECT, then the working directory.
func ProjectDir(flagValue string, lookup func(string) (string, bool)) string {
	if flagValue != "" {
		return flagValue
	}

	if v, ok := lookup(EnvProject); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return "."
}
