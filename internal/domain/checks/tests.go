package checks

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/parse"
)

// TestsCheck verifies test-file presence and the plugin's test and coverage
// scripts. Missing tests are a hard quality gate: no test file is a failed
// finding, not a warning. In functional mode the scripts are actually
// executed through the command runner.
type TestsCheck struct {
	runner domain.CommandRunner
}

func NewTestsCheck(runner domain.CommandRunner) *TestsCheck {
	return &TestsCheck{runner: runner}
}

func (c *TestsCheck) Name() Name { return Tests }

func (c *TestsCheck) Run(ctx context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	if !cc.Config.Rules.Tests.Enabled {
		return nil
	}

	testFiles := findTestFiles(cc.PluginPath)
	if len(testFiles) == 0 {
		rs.AddFailed("No test files found")
	} else {
		rs.AddPassed(fmt.Sprintf("Found %d test file(s)", len(testFiles)))
	}

	pkg, ok := loadPackageJSON(cc.PluginPath)
	if !ok {
		return nil // package.json absence is reported by the structure check
	}
	scripts := pkgScripts(pkg)

	c.checkTestScript(ctx, cc, scripts, rs)
	c.checkCoverageScript(ctx, cc, scripts, rs)

	return nil
}

func (c *TestsCheck) checkTestScript(ctx context.Context, cc domain.CheckContext, scripts map[string]string, rs *domain.ResultSet) {
	if _, ok := scripts["test"]; !ok {
		rs.AddFailed("No test script defined in package.json")
		return
	}
	rs.AddPassed("Test script defined")

	if !cc.Functional {
		return
	}

	res := c.runner.Run(ctx, cc.PluginPath, "npm", "test")
	if res.Success {
		rs.AddPassed(fmt.Sprintf("Test suite ran: %s", res.Summary))
		return
	}
	rs.AddFailed(fmt.Sprintf("Test suite failed: %s", processFailureDetail(res)))
}

func (c *TestsCheck) checkCoverageScript(ctx context.Context, cc domain.CheckContext, scripts map[string]string, rs *domain.ResultSet) {
	if _, ok := scripts["coverage"]; !ok {
		rs.AddRecommendation("Add a coverage script to measure test coverage")
		return
	}
	rs.AddPassed("Coverage script defined")

	if !cc.Functional {
		return
	}

	res := c.runner.Run(ctx, cc.PluginPath, "npm", "run", "coverage")
	if !res.Success {
		rs.AddFailed(fmt.Sprintf("Coverage run failed: %s", processFailureDetail(res)))
		return
	}

	threshold := cc.Config.Rules.Tests.CoverageThreshold
	pct, ok := parse.Coverage(res.Output + "\n" + res.StderrOutput)
	switch {
	case !ok:
		rs.AddWarning("Coverage ran but the percentage could not be determined from its output")
	case pct >= threshold:
		rs.AddPassed(fmt.Sprintf("Coverage %.2f%% meets the %.0f%% threshold", pct, threshold))
	default:
		rs.AddWarning(fmt.Sprintf("Coverage %.2f%% is below the %.0f%% threshold", pct, threshold))
	}
}

// processFailureDetail builds a one-line failure description carrying the
// captured output, preferring stderr.
func processFailureDetail(res domain.ProcessResult) string {
	detail := strings.TrimSpace(res.StderrOutput)
	if detail == "" {
		detail = strings.TrimSpace(res.Output)
	}
	if detail == "" {
		return res.Summary
	}
	if len(detail) > 400 {
		detail = detail[:400] + "…"
	}
	return fmt.Sprintf("%s: %s", res.Summary, detail)
}

var testFileExts = map[string]bool{".js": true, ".cjs": true, ".mjs": true}

// findTestFiles walks the test/ directory and collects files matching the
// supported shapes: *.test.{js,cjs,mjs}, *.spec.{js,cjs,mjs} and
// index.{js,cjs,mjs}, at any depth. Results are de-duplicated and sorted
// for stable reporting.
func findTestFiles(pluginPath string) []string {
	root := filepath.Join(pluginPath, "test")
	seen := map[string]bool{}

	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fs.SkipAll
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if isTestFileName(d.Name()) {
			rel, relErr := filepath.Rel(pluginPath, path)
			if relErr == nil {
				seen[filepath.ToSlash(rel)] = true
			}
		}
		return nil
	})

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

func isTestFileName(name string) bool {
	ext := filepath.Ext(name)
	if !testFileExts[ext] {
		return false
	}
	base := strings.TrimSuffix(name, ext)
	return strings.HasSuffix(base, ".test") ||
		strings.HasSuffix(base, ".spec") ||
		base == "index"
}
