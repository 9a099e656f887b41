package application

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/checks"
)

// ValidateService runs the validation pipeline for a single plugin:
// resolve config -> dispatch checks -> summarize into a report.
type ValidateService struct {
	resolver domain.ConfigResolver
	registry map[checks.Name]checks.Check
	gitInfo  domain.GitInfo
}

// NewValidateService wires the pipeline. gitInfo may be nil; the report is
// then simply not stamped with a commit hash.
func NewValidateService(resolver domain.ConfigResolver, runner domain.CommandRunner, gitInfo domain.GitInfo) *ValidateService {
	return &ValidateService{
		resolver: resolver,
		registry: checks.NewRegistry(runner),
		gitInfo:  gitInfo,
	}
}

// Validate runs the named checks against the plugin directory and returns
// the full report. An inaccessible plugin path is the only error that
// crosses this boundary; every other fault is recovered into a finding so
// the caller always receives a complete report.
func (s *ValidateService) Validate(ctx context.Context, pluginPath string, names []string, functional bool) (*domain.ValidationReport, error) {
	absPath, err := filepath.Abs(pluginPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("plugin path inaccessible: %s", pluginPath)
	}

	cfg := s.resolver.Resolve(absPath)

	if len(names) == 0 {
		names = checks.DefaultNames()
	}

	cc := domain.CheckContext{
		PluginPath: absPath,
		Config:     cfg,
		Functional: functional,
	}

	rs := domain.NewResultSet()
	checks.Run(ctx, s.registry, names, cc, rs)

	report := &domain.ValidationReport{
		PluginPath: absPath,
		PluginName: pluginName(absPath),
		Checks:     names,
		Functional: functional,
		Results:    rs,
		Summary:    domain.Summarize(rs),
		Timestamp:  time.Now(),
	}

	if s.gitInfo != nil && s.gitInfo.IsGitRepo(absPath) {
		if hash, hashErr := s.gitInfo.CommitHash(absPath); hashErr == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// pluginName prefers the package.json name and falls back to the directory
// base name.
func pluginName(absPath string) string {
	data, err := os.ReadFile(filepath.Join(absPath, "package.json"))
	if err == nil {
		var pkg struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
			return pkg.Name
		}
	}
	return filepath.Base(absPath)
}
