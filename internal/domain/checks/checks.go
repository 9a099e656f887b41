// Package checks implements the plugin validation pipeline: a registry of
// named, independently invocable checks that inspect a plugin directory and
// append findings into a shared ResultSet.
package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugforge/plugforge/internal/domain"
)

// Name identifies a check at the API boundary.
type Name string

const (
	Structure   Name = "structure"
	Tests       Name = "tests"
	Docs        Name = "docs"
	PackageJSON Name = "package-json"
	JSDoc       Name = "jsdoc"
	Performance Name = "performance"
	Security    Name = "security"
	Integration Name = "integration"
	Patterns    Name = "metalsmith-patterns"
)

// Check is one independently pluggable unit of the validation pipeline.
// Run appends findings to rs; a returned error is converted into a single
// finding at the pipeline boundary, never propagated further.
type Check interface {
	Name() Name
	Run(ctx context.Context, cc domain.CheckContext, rs *domain.ResultSet) error
}

// requiredChecks fail hard: an execution fault inside one becomes a failed
// finding. Everything else is a best-effort heuristic that degrades to a
// warning.
var requiredChecks = map[Name]bool{
	Structure:   true,
	Tests:       true,
	Docs:        true,
	PackageJSON: true,
}

// DefaultNames returns the checks run when the caller does not ask for a
// specific set.
func DefaultNames() []string {
	return []string{string(Structure), string(Tests), string(Docs), string(PackageJSON)}
}

// AllNames returns every registered check name, required checks first.
func AllNames() []string {
	return []string{
		string(Structure), string(Tests), string(Docs), string(PackageJSON),
		string(JSDoc), string(Performance), string(Security),
		string(Integration), string(Patterns),
	}
}

// NewRegistry builds the full check registry. The runner is only consulted
// by checks that execute external commands, and only in functional mode.
func NewRegistry(runner domain.CommandRunner) map[Name]Check {
	reg := map[Name]Check{}
	for _, c := range []Check{
		NewStructureCheck(),
		NewTestsCheck(runner),
		NewDocsCheck(),
		NewPackageJSONCheck(),
		NewJSDocCheck(),
		NewPerformanceCheck(),
		NewSecurityCheck(),
		NewIntegrationCheck(),
		NewPatternsCheck(),
	} {
		reg[c.Name()] = c
	}
	return reg
}

// Run dispatches the named checks sequentially against the plugin.
// Unknown or unregistered names are silently skipped. One check's findings
// never block another's execution: an error or panic inside a check becomes
// a single finding and the pipeline continues.
func Run(ctx context.Context, reg map[Name]Check, names []string, cc domain.CheckContext, rs *domain.ResultSet) {
	for _, n := range names {
		check, ok := reg[Name(n)]
		if !ok {
			continue
		}
		runOne(ctx, check, cc, rs)
	}
}

func runOne(ctx context.Context, check Check, cc domain.CheckContext, rs *domain.ResultSet) {
	defer func() {
		if r := recover(); r != nil {
			recordFault(check.Name(), fmt.Errorf("%v", r), rs)
		}
	}()

	if err := check.Run(ctx, cc, rs); err != nil {
		recordFault(check.Name(), err, rs)
	}
}

func recordFault(name Name, err error, rs *domain.ResultSet) {
	msg := fmt.Sprintf("%s check could not complete: %v", name, err)
	if requiredChecks[name] {
		rs.AddFailed(msg)
	} else {
		rs.AddWarning(msg)
	}
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// readPluginFile reads a file relative to the plugin root. Missing files
// are normal input for best-effort heuristics, so absence comes back as
// ok=false rather than an error.
func readPluginFile(pluginPath, rel string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(pluginPath, rel))
	if err != nil {
		return "", false
	}
	return string(data), true
}
