package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Summary is the machine-readable rollup of a ResultSet. It is derivable
// from the ResultSet alone, without re-running any check.
type Summary struct {
	Passed          int  `json:"passed"`
	Failed          int  `json:"failed"`
	Warnings        int  `json:"warnings"`
	Recommendations int  `json:"recommendations"`
	Total           int  `json:"total"`
	Score           int  `json:"score"`
	Success         bool `json:"success"`
}

// ValidationReport is the full outcome of one validation invocation.
type ValidationReport struct {
	PluginPath string     `json:"plugin_path"`
	PluginName string     `json:"plugin_name"`
	Checks     []string   `json:"checks"`
	Functional bool       `json:"functional"`
	Results    *ResultSet `json:"results"`
	Summary    Summary    `json:"summary"`
	CommitHash string     `json:"commit_hash,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ComputeScore returns the percentage score for a ResultSet:
// round(100 * passed / total). Warnings and recommendations count against
// the denominator but never the numerator. An empty ResultSet scores 100.
func ComputeScore(r *ResultSet) int {
	total := r.Total()
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(len(r.Passed)) / float64(total) * 100))
}

// Summarize builds the machine-readable summary for a ResultSet.
// The binary gate is keyed strictly on the failed count; warnings and
// recommendations never affect it.
func Summarize(r *ResultSet) Summary {
	return Summary{
		Passed:          len(r.Passed),
		Failed:          len(r.Failed),
		Warnings:        len(r.Warnings),
		Recommendations: len(r.Recommendations),
		Total:           r.Total(),
		Score:           ComputeScore(r),
		Success:         len(r.Failed) == 0,
	}
}

// RenderReport formats the plain-text validation report: the four labeled
// sections in fixed order (passed, warnings, recommendations, failed), each
// only when non-empty, followed by the summary block. Colorization is a
// presentation concern layered on top by the tui adapter.
func RenderReport(report *ValidationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validation results for %s\n", report.PluginName)

	writeSection(&b, "Passed", "✓", report.Results.Passed)
	writeSection(&b, "Warnings", "⚠", report.Results.Warnings)
	writeSection(&b, "Recommendations", "→", report.Results.Recommendations)
	writeSection(&b, "Failed", "✗", report.Results.Failed)

	s := report.Summary
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total checks: %d\n", s.Total)
	fmt.Fprintf(&b, "Score: %d%%\n", s.Score)
	if s.Success {
		b.WriteString("PASSED: no failed checks\n")
	} else {
		fmt.Fprintf(&b, "FAILED: %d check(s) failed\n", s.Failed)
	}

	return b.String()
}

func writeSection(b *strings.Builder, label, mark string, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d):\n", label, len(msgs))
	for _, m := range msgs {
		fmt.Fprintf(b, "  %s %s\n", mark, m)
	}
}
