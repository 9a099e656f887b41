package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugforge/plugforge/internal/adapters/outbound/tui"
	"github.com/plugforge/plugforge/internal/domain"
)

func sampleReport(failed bool) *domain.ValidationReport {
	rs := domain.NewResultSet()
	rs.AddPassed("Directory src/ present")
	rs.AddRecommendation("Consider adding a lib/ directory")
	if failed {
		rs.AddFailed("No test files found")
	}
	return &domain.ValidationReport{
		PluginName: "metalsmith-demo",
		Results:    rs,
		Summary:    domain.Summarize(rs),
	}
}

func TestRenderValidation_Banner(t *testing.T) {
	out := tui.RenderValidation(sampleReport(false))
	assert.Contains(t, out, "plugforge")
	assert.Contains(t, out, "metalsmith-demo")
	assert.Contains(t, out, "PASSED")

	out = tui.RenderValidation(sampleReport(true))
	assert.Contains(t, out, "FAILED")
}

func TestRenderValidation_SectionsAndFindings(t *testing.T) {
	out := tui.RenderValidation(sampleReport(true))

	assert.Contains(t, out, "Directory src/ present")
	assert.Contains(t, out, "Consider adding a lib/ directory")
	assert.Contains(t, out, "No test files found")
	assert.Contains(t, out, "3 checks")
	assert.NotContains(t, out, "Warnings", "empty sections are omitted")
}

func TestRenderAuditSummary_RankedByScoreWithErrorsLast(t *testing.T) {
	low := sampleReport(true) // one failure drags the score down
	low.PluginName = "metalsmith-low"
	high := sampleReport(false)
	high.PluginName = "metalsmith-high"

	results := []domain.AuditResult{
		{Err: "plugin path inaccessible: /nope"},
		{Report: low},
		{Report: high},
	}
	out := tui.RenderAuditSummary(results)

	highIdx := strings.Index(out, "metalsmith-high")
	lowIdx := strings.Index(out, "metalsmith-low")
	errIdx := strings.Index(out, "plugin path inaccessible")
	require.True(t, highIdx >= 0 && lowIdx >= 0 && errIdx >= 0)
	assert.Less(t, highIdx, lowIdx, "higher score renders first")
	assert.Less(t, lowIdx, errIdx, "error entries sink to the bottom")

	assert.Equal(t, "plugin path inaccessible: /nope", results[0].Err,
		"input slice order untouched")
	assert.Same(t, low, results[1].Report)
}

func TestRenderAuditSummary(t *testing.T) {
	ok := sampleReport(false)
	ok.CommitHash = "0123456789abcdef0123456789abcdef01234567"
	bad := sampleReport(true)

	out := tui.RenderAuditSummary([]domain.AuditResult{
		{Report: ok},
		{Report: bad},
		{Err: "plugin path inaccessible: /nope"},
	})

	assert.Contains(t, out, "Audit Summary")
	assert.Contains(t, out, "0123456", "commit hash shortened to 7 characters")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "·······", "missing hash placeholder")
	assert.Contains(t, out, "plugin path inaccessible: /nope")
}
