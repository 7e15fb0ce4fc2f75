package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/obentoo/renovatelint/internal/common/output"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format: use .yaml, .yml or .toml")
	ErrInvalidColorMode  = errors.New("invalid output.color")
)

// Config represents the tool configuration
type Config struct {
	Output OutputConfig `yaml:"output" toml:"output"`
	Checks ChecksConfig `yaml:"checks" toml:"checks"`
	Report ReportConfig `yaml:"report" toml:"report"`
}

// OutputConfig holds terminal output settings
type OutputConfig struct {
	Color string `yaml:"color" toml:"color"` // "auto", "always" or "never"
}

// ChecksConfig toggles the detection passes
type ChecksConfig struct {
	Duplicates bool `yaml:"duplicates" toml:"duplicates"` // exact duplicate groups
	Overlaps   bool `yaml:"overlaps" toml:"overlaps"`     // pairwise package name overlaps
}

// ReportConfig holds optional report settings
type ReportConfig struct {
	Coverage bool `yaml:"coverage" toml:"coverage"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output: OutputConfig{Color: string(output.ColorAuto)},
		Checks: ChecksConfig{Duplicates: true, Overlaps: true},
	}
}

// LoadFrom reads configuration from a specific file path. Keys missing from
// the file keep their default values. The format is picked by extension.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if _, err := output.ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidColorMode, err)
	}
	return nil
}

// ColorMode returns the parsed output.color value
func (c *Config) ColorMode() output.ColorMode {
	mode, err := output.ParseColorMode(c.Output.Color)
	if err != nil {
		return output.ColorAuto
	}
	return mode
}
