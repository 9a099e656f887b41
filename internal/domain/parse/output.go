// Package parse extracts structured facts from heterogeneous tool output.
// Test runners and coverage reporters format identically-meaningful numbers
// differently, so every extractor tries an ordered list of patterns and the
// contract is best-effort: no match is never an error.
package parse

import (
	"fmt"
	"regexp"
)

var testSummaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s+passing`),
	regexp.MustCompile(`(\d+)\s+tests?\s+passed`),
	regexp.MustCompile(`Tests:\s+(\d+)\s+passed`),
}

// TestSummary produces a one-line human-readable summary of a test run's
// output. When no pass-count pattern matches it falls back to a generic
// success message rather than failing.
func TestSummary(output string) string {
	for _, re := range testSummaryPatterns {
		if m := re.FindStringSubmatch(output); m != nil {
			return fmt.Sprintf("%s tests passed", m[1])
		}
	}
	return "completed successfully"
}

// Coverage patterns, tried in order. Different reporters (c8, nyc, istanbul
// text summaries) emit the same percentage in different shapes.
var coveragePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Lines\s*\|\s*([\d.]+)\s*\|`),    // tabular: Lines | 91.28 |
	regexp.MustCompile(`Lines\s*:\s*([\d.]+)%`),         // colon summary: Lines : 91.28%
	regexp.MustCompile(`([\d.]+)%\s+lines`),             // inline: 91.28% lines
	regexp.MustCompile(`All files[^|]*\|\s*([\d.]+)\s*\|`), // aggregate row
}

// Coverage extracts the line-coverage percentage from combined stdout and
// stderr output. The second return value reports whether any pattern
// matched; callers treat false as "unavailable", never as a failure.
func Coverage(output string) (float64, bool) {
	for _, re := range coveragePatterns {
		m := re.FindStringSubmatch(output)
		if m == nil {
			continue
		}
		var pct float64
		if _, err := fmt.Sscanf(m[1], "%f", &pct); err != nil {
			continue
		}
		return pct, true
	}
	return 0, false
}
