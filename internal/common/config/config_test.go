package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/obentoo/renovatelint/internal/common/output"
	"gopkg.in/yaml.v3"
)

// genConfig generates valid Config structs
func genConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("auto", "always", "never"),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	).Map(func(values []interface{}) *Config {
		return &Config{
			Output: OutputConfig{Color: values[0].(string)},
			Checks: ChecksConfig{
				Duplicates: values[1].(bool),
				Overlaps:   values[2].(bool),
			},
			Report: ReportConfig{Coverage: values[3].(bool)},
		}
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestConfigRoundTrip checks that any valid config written as YAML or TOML
// loads back unchanged.
func TestConfigRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("YAML round-trip preserves data", prop.ForAll(
		func(cfg *Config) bool {
			tmpDir, err := os.MkdirTemp("", "config-test-*")
			if err != nil {
				t.Logf("Failed to create temp dir: %v", err)
				return false
			}
			defer os.RemoveAll(tmpDir)

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return false
			}
			path := filepath.Join(tmpDir, "config.yaml")
			if err := os.WriteFile(path, data, 0644); err != nil {
				return false
			}

			loaded, err := LoadFrom(path)
			if err != nil {
				t.Logf("Failed to load config: %v", err)
				return false
			}
			return reflect.DeepEqual(cfg, loaded)
		},
		genConfig(),
	))

	properties.Property("TOML round-trip preserves data", prop.ForAll(
		func(cfg *Config) bool {
			tmpDir, err := os.MkdirTemp("", "config-test-*")
			if err != nil {
				t.Logf("Failed to create temp dir: %v", err)
				return false
			}
			defer os.RemoveAll(tmpDir)

			var buf strings.Builder
			if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
				return false
			}
			path := filepath.Join(tmpDir, "config.toml")
			if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
				return false
			}

			loaded, err := LoadFrom(path)
			if err != nil {
				t.Logf("Failed to load config: %v", err)
				return false
			}
			return reflect.DeepEqual(cfg, loaded)
		},
		genConfig(),
	))

	properties.TestingRun(t)
}

// TestMissingKeysKeepDefaults tests that a partial file only overrides what it names
func TestMissingKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "partial.yaml", "report:\n  coverage: true\n"},
		{"yml", "partial.yml", "report:\n  coverage: true\n"},
		{"toml", "partial.toml", "[report]\ncoverage = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeFile(t, dir, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if !cfg.Report.Coverage {
				t.Error("Expected report.coverage to be true")
			}
			if !cfg.Checks.Duplicates || !cfg.Checks.Overlaps {
				t.Errorf("Expected both checks enabled by default, got %+v", cfg.Checks)
			}
			if cfg.ColorMode() != output.ColorAuto {
				t.Errorf("Expected auto color mode, got %q", cfg.ColorMode())
			}
		})
	}
}

func TestDisableCheck(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(writeFile(t, dir, "c.yaml", "checks:\n  overlaps: false\noutput:\n  color: never\n"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !cfg.Checks.Duplicates {
		t.Error("Expected duplicates check to stay enabled")
	}
	if cfg.Checks.Overlaps {
		t.Error("Expected overlaps check to be disabled")
	}
	if cfg.ColorMode() != output.ColorNever {
		t.Errorf("Expected never color mode, got %q", cfg.ColorMode())
	}
}

func TestLoadFromErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected not-exist error, got: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFrom(writeFile(t, dir, "config.json", "{}"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrUnsupportedFormat, got: %v", err)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := LoadFrom(writeFile(t, dir, "color.yaml", "output:\n  color: rainbow\n"))
		if !errors.Is(err, ErrInvalidColorMode) {
			t.Errorf("Expected ErrInvalidColorMode, got: %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFrom(writeFile(t, dir, "bad.yaml", "output: [unclosed\n"))
		if err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadFrom(writeFile(t, dir, "bad.toml", "[report\ncoverage = \n"))
		if err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if !cfg.Checks.Duplicates || !cfg.Checks.Overlaps {
		t.Error("Default config should enable both checks")
	}
	if cfg.Report.Coverage {
		t.Error("Default config should not enable the coverage report")
	}
}
