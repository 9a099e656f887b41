package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plugforge/plugforge/internal/domain/checks"
)

const toolConfigName = ".plugforge.yaml"

// ToolConfig holds tool-level defaults loaded from .plugforge.yaml in the
// working directory. This is plugforge's own configuration, distinct from
// the per-plugin validation config documents.
type ToolConfig struct {
	DefaultChecks []string `yaml:"default_checks"`
	Functional    bool     `yaml:"functional"`
	Concurrency   int      `yaml:"concurrency"`
	History       bool     `yaml:"history"`
}

// DefaultToolConfig returns the settings used when no .plugforge.yaml exists.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		DefaultChecks: checks.DefaultNames(),
		Concurrency:   4,
		History:       true,
	}
}

// LoadToolConfig reads .plugforge.yaml from dir, falling back to defaults
// when the file does not exist.
func LoadToolConfig(dir string) (ToolConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, toolConfigName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultToolConfig(), nil
		}
		return ToolConfig{}, err
	}

	cfg := DefaultToolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ToolConfig{}, fmt.Errorf("parsing %s: %w", toolConfigName, err)
	}
	if err := cfg.Validate(); err != nil {
		return ToolConfig{}, fmt.Errorf("invalid %s: %w", toolConfigName, err)
	}
	return cfg, nil
}

// Validate checks the config for invalid values. Unknown check names are
// not an error here: the pipeline skips them silently, matching the
// validate API contract.
func (c ToolConfig) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", c.Concurrency)
	}
	if len(c.DefaultChecks) == 0 {
		return fmt.Errorf("default_checks must not be empty")
	}
	return nil
}
