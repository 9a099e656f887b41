package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/plugforge/plugforge/internal/domain"
)

// StructureCheck verifies the presence of required and recommended
// directories and files. In functional mode it additionally runs a
// lightweight complexity analysis of the plugin's main source file.
type StructureCheck struct{}

func NewStructureCheck() *StructureCheck { return &StructureCheck{} }

func (c *StructureCheck) Name() Name { return Structure }

func (c *StructureCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	rules := cc.Config.Rules.Structure
	if !rules.Enabled {
		return nil
	}

	for _, dir := range rules.RequiredDirs {
		if dirExists(filepath.Join(cc.PluginPath, dir)) {
			rs.AddPassed(fmt.Sprintf("Directory %s/ present", dir))
		} else {
			rs.AddFailed(fmt.Sprintf("Missing required directory: %s", dir))
		}
	}

	for _, file := range rules.RequiredFiles {
		if fileExists(filepath.Join(cc.PluginPath, file)) {
			rs.AddPassed(fmt.Sprintf("File %s present", file))
		} else {
			rs.AddFailed(fmt.Sprintf("Missing required file: %s", file))
		}
	}

	for _, dir := range rules.RecommendedDirs {
		if !dirExists(filepath.Join(cc.PluginPath, dir)) {
			rs.AddRecommendation(fmt.Sprintf("Consider adding a %s/ directory", dir))
		}
	}

	for _, file := range rules.RecommendedFiles {
		if !fileExists(filepath.Join(cc.PluginPath, file)) {
			rs.AddRecommendation(fmt.Sprintf("Consider adding %s", file))
		}
	}

	if cc.Functional {
		c.analyzeComplexity(cc, rs)
	}

	return nil
}

// Complexity thresholds for the main source file. Crossing any of them
// produces a split recommendation, never a failure.
const (
	maxMainLines     = 150
	maxMainFunctions = 8
	maxMainImports   = 10
	processorFuncMin = 5
)

var (
	functionDeclRe = regexp.MustCompile(`(?m)^\s*(?:export\s+)?(?:async\s+)?function\s+\w+`)
	arrowConstRe   = regexp.MustCompile(`(?m)^\s*(?:export\s+)?const\s+\w+\s*=\s*(?:async\s*)?(?:\([^)]*\)|\w+)\s*=>`)
	importStmtRe   = regexp.MustCompile(`(?m)^\s*(?:import\s.+from\s|const\s.+=\s*require\()`)
	processVerbRe  = regexp.MustCompile(`(?i)\b(process|transform|parse)\w*\b`)
)

// analyzeComplexity counts lines, function declarations and imports in the
// main source file via pattern matching over raw text. Heuristic only: no
// AST is built, so unusual formatting can over- or under-count.
func (c *StructureCheck) analyzeComplexity(cc domain.CheckContext, rs *domain.ResultSet) {
	content, ok := readPluginFile(cc.PluginPath, mainSourceFile(cc.Config))
	if !ok {
		return // absence already reported by the required-files pass
	}

	lines := countCodeLines(content)
	functions := len(functionDeclRe.FindAllString(content, -1)) +
		len(arrowConstRe.FindAllString(content, -1))
	imports := len(importStmtRe.FindAllString(content, -1))

	if lines > maxMainLines || functions > maxMainFunctions || imports > maxMainImports {
		rs.AddRecommendation(fmt.Sprintf(
			"Main source file is getting large (%d lines, %d functions, %d imports); consider extracting a utilities module",
			lines, functions, imports))
	}

	if functions > processorFuncMin && processVerbRe.MatchString(content) {
		rs.AddRecommendation(
			"Main source file mixes processing logic with plugin wiring; consider splitting into dedicated processor modules")
	}
}

// mainSourceFile picks the plugin's main source file: the first configured
// required file with a JavaScript extension, falling back to src/index.js.
func mainSourceFile(cfg domain.ValidationConfig) string {
	for _, f := range cfg.Rules.Structure.RequiredFiles {
		switch filepath.Ext(f) {
		case ".js", ".cjs", ".mjs":
			return f
		}
	}
	return "src/index.js"
}

// countCodeLines counts non-blank, non-comment lines. Block comments are
// tracked line by line; a line that opens and closes a block comment still
// counts as a comment line.
func countCodeLines(content string) int {
	count := 0
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if inBlock {
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if strings.HasPrefix(trimmed, "/*") {
			if !strings.Contains(trimmed, "*/") {
				inBlock = true
			}
			continue
		}
		count++
	}
	return count
}
