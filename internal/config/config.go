package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes for diagnostic output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents sgrep configuration options.
// Values here are defaults; command-line flags override them.
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls colored diagnostics (auto, always, never)
	Color string `yaml:"color"`

	// LineNumbers shows line numbers by default
	LineNumbers bool `yaml:"line_numbers"`

	// NoFilename hides the filename prefix by default
	NoFilename bool `yaml:"no_filename"`

	// Recursive searches subdirectories by default
	Recursive bool `yaml:"recursive"`

	// IgnoreCase matches case-insensitively by default
	IgnoreCase bool `yaml:"ignore_case"`

	// ExcludeDirs lists directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// SkipHiddenDirs prunes directories starting with "." during recursive searches
	SkipHiddenDirs bool `yaml:"skip_hidden_dirs"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "warn",
		Color:       ColorAuto,
		ExcludeDirs: []string{},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit false
	type yamlConfig struct {
		LogLevel       string    `yaml:"log_level"`
		Color          string    `yaml:"color"`
		LineNumbers    *bool     `yaml:"line_numbers"`
		NoFilename     *bool     `yaml:"no_filename"`
		Recursive      *bool     `yaml:"recursive"`
		IgnoreCase     *bool     `yaml:"ignore_case"`
		ExcludeDirs    *[]string `yaml:"exclude_dirs"`
		SkipHiddenDirs *bool     `yaml:"skip_hidden_dirs"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.Color != "" {
		cfg.Color = strings.ToLower(yamlCfg.Color)
	}
	if yamlCfg.LineNumbers != nil {
		cfg.LineNumbers = *yamlCfg.LineNumbers
	}
	if yamlCfg.NoFilename != nil {
		cfg.NoFilename = *yamlCfg.NoFilename
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}
	if yamlCfg.IgnoreCase != nil {
		cfg.IgnoreCase = *yamlCfg.IgnoreCase
	}
	if yamlCfg.ExcludeDirs != nil {
		cfg.ExcludeDirs = *yamlCfg.ExcludeDirs
	}
	if yamlCfg.SkipHiddenDirs != nil {
		cfg.SkipHiddenDirs = *yamlCfg.SkipHiddenDirs
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .sgrep/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, DirName, FileName)
	return LoadConfig(configPath)
}

// FlagOverrides carries command-line values that take precedence over the file.
// Nil fields were not set on the command line.
type FlagOverrides struct {
	LogLevel    *string
	Color       *string
	LineNumbers *bool
	NoFilename  *bool
	Recursive   *bool
	IgnoreCase  *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.LogLevel != nil {
		c.LogLevel = strings.ToLower(*f.LogLevel)
	}
	if f.Color != nil {
		c.Color = strings.ToLower(*f.Color)
	}
	if f.LineNumbers != nil {
		c.LineNumbers = *f.LineNumbers
	}
	if f.NoFilename != nil {
		c.NoFilename = *f.NoFilename
	}
	if f.Recursive != nil {
		c.Recursive = *f.Recursive
	}
	if f.IgnoreCase != nil {
		c.IgnoreCase = *f.IgnoreCase
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	for _, dir := range c.ExcludeDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("exclude_dirs cannot contain empty names")
		}
	}

	return nil
}
