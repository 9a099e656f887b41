package checks

import (
	"context"
	"regexp"

	"github.com/plugforge/plugforge/internal/domain"
)

// PerformanceCheck looks for common build-time performance smells in the
// main source file. Regex heuristics over raw text: false positives on
// unusual formatting are accepted, findings never exceed recommendation or
// warning severity.
type PerformanceCheck struct{}

func NewPerformanceCheck() *PerformanceCheck { return &PerformanceCheck{} }

func (c *PerformanceCheck) Name() Name { return Performance }

// loopBody matches a for/while loop with a shallowly-braced body so the
// patterns below can be anchored inside it. The header accepts anything up
// to the body's opening brace, covering for-of, for-in and C-style
// semicolon headers alike. Deeply nested bodies escape the match, which is
// acceptable for a heuristic.
const loopBody = `(?s)\b(?:for|while)\s*\([^{]*\)\s*\{(?:[^{}]|\{[^{}]*\})*?`

var (
	regexInLoopRe    = regexp.MustCompile(loopBody + `new\s+RegExp\s*\(`)
	concatInLoopRe   = regexp.MustCompile(loopBody + `\w+\s*\+=\s*`)
	includesInLoopRe = regexp.MustCompile(loopBody + `\.includes\s*\(`)
	awaitInLoopRe    = regexp.MustCompile(loopBody + `\bawait\s`)
	promiseAllRe     = regexp.MustCompile(`Promise\.all(?:Settled)?\s*\(`)
)

func (c *PerformanceCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	content, ok := readPluginFile(cc.PluginPath, mainSourceFile(cc.Config))
	if !ok {
		rs.AddWarning("Main source file not found; performance check skipped")
		return nil
	}

	clean := true

	if regexInLoopRe.MatchString(content) {
		rs.AddRecommendation("Compile regular expressions outside loops instead of calling new RegExp per iteration")
		clean = false
	}

	if concatInLoopRe.MatchString(content) {
		rs.AddRecommendation("Avoid string concatenation in loops; collect parts in an array or use Buffer and join once")
		clean = false
	}

	if includesInLoopRe.MatchString(content) {
		rs.AddRecommendation("Array.includes inside a loop is O(n·m); use a Set or Map for membership checks")
		clean = false
	}

	if awaitInLoopRe.MatchString(content) && !promiseAllRe.MatchString(content) {
		rs.AddRecommendation("Files are awaited one at a time; consider batching with Promise.all")
		clean = false
	}

	if clean {
		rs.AddPassed("No performance anti-patterns detected")
	}

	return nil
}
