// Package config resolves validation configuration for a plugin directory
// and loads the tool-level .plugforge.yaml.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/plugforge/plugforge/internal/domain"
)

// candidateFiles are tried in priority order; the first one that parses as
// a JSON object wins.
var candidateFiles = []string{
	".validationrc.json",
	".validation.json",
	"validation.config.json",
}

// JSONResolver implements domain.ConfigResolver. Resolution never fails:
// a missing or malformed document silently falls back to the defaults.
type JSONResolver struct{}

func New() *JSONResolver { return &JSONResolver{} }

func (r *JSONResolver) Resolve(pluginPath string) domain.ValidationConfig {
	defaults := domain.DefaultValidationConfig()

	for _, name := range candidateFiles {
		data, err := os.ReadFile(filepath.Join(pluginPath, name))
		if err != nil {
			continue
		}
		var override map[string]any
		if err := json.Unmarshal(data, &override); err != nil {
			continue
		}
		return mergeOnto(defaults, override)
	}

	return defaults
}

// mergeOnto deep-merges the override document onto the defaults. The merge
// runs over map representations so JSON key *presence* drives it: a key the
// override omits keeps its default, while any present value that is not a
// plain object (false, 0, "", arrays, null) replaces the default wholesale.
func mergeOnto(defaults domain.ValidationConfig, override map[string]any) domain.ValidationConfig {
	base, err := toMap(defaults)
	if err != nil {
		return defaults
	}

	merged := deepMerge(base, override)

	data, err := json.Marshal(merged)
	if err != nil {
		return defaults
	}
	var cfg domain.ValidationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults
	}
	return cfg
}

func toMap(cfg domain.ValidationConfig) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// deepMerge recurses only where both sides hold plain objects; every other
// override value wins as-is. Neither input map is mutated.
func deepMerge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if ov, ok := v.(map[string]any); ok {
			if bv, ok := out[k].(map[string]any); ok {
				out[k] = deepMerge(bv, ov)
				continue
			}
		}
		out[k] = v
	}
	return out
}
