package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plugforge/plugforge/internal/adapters/outbound/gitinfo"
	"github.com/plugforge/plugforge/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	recStyle   = lipgloss.NewStyle().Foreground(info)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderValidation formats a validation report for the terminal. The
// section order mirrors the plain-text report: passed, warnings,
// recommendations, failed, then the summary.
func RenderValidation(report *domain.ValidationReport) string {
	var b strings.Builder

	s := report.Summary

	title := headerStyle.Render("plugforge")
	subtitle := dimStyle.Render(report.PluginName)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(s.Score)).
		Render(fmt.Sprintf("%d%%", s.Score))

	banner := passStyle.Bold(true).Render("PASSED")
	if !s.Success {
		banner = failStyle.Bold(true).Render("FAILED")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + banner))
	b.WriteString("\n\n")

	renderSection(&b, "Passed", passStyle.Render("✓"), report.Results.Passed)
	renderSection(&b, "Warnings", warnStyle.Render("⚠"), report.Results.Warnings)
	renderSection(&b, "Recommendations", recStyle.Render("→"), report.Results.Recommendations)
	renderSection(&b, "Failed", failStyle.Render("✗"), report.Results.Failed)

	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s",
		titleStyle.Render(fmt.Sprintf("%d checks", s.Total)),
		dimStyle.Render(fmt.Sprintf("%d passed · %d warnings · %d recommendations · %d failed",
			s.Passed, s.Warnings, s.Recommendations, s.Failed)),
	)
	b.WriteString("\n")

	return b.String()
}

func renderSection(b *strings.Builder, label, mark string, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render(label), dimStyle.Render(fmt.Sprintf("(%d)", len(msgs))))
	for _, m := range msgs {
		fmt.Fprintf(b, "    %s %s\n", mark, dimStyle.Render(m))
	}
	b.WriteString("\n")
}

// RenderAuditSummary formats the batch-audit table, ranked by score
// descending. Error entries sink to the bottom; ties keep their input order.
func RenderAuditSummary(results []domain.AuditResult) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Audit Summary") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, r := range rankByScore(results) {
		if r.Report == nil {
			fmt.Fprintf(&b, "  %s %s\n", failStyle.Render("✗"), dimStyle.Render(r.Err))
			continue
		}
		s := r.Report.Summary
		mark := passStyle.Render("✓")
		if !s.Success {
			mark = failStyle.Render("✗")
		}
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(s.Score)).
			Render(fmt.Sprintf("%3d%%", s.Score))

		hash := gitinfo.ShortHash(r.Report.CommitHash)
		if hash == "" {
			hash = "·······"
		}

		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			mark,
			scoreStyled,
			padRight(r.Report.PluginName, 32),
			faintStyle.Render(hash),
		)
	}

	return b.String()
}

// rankByScore orders a copy of the results by score descending, error
// entries last. The caller's slice keeps its input order; audit history and
// JSON output depend on it.
func rankByScore(results []domain.AuditResult) []domain.AuditResult {
	ranked := make([]domain.AuditResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Report, ranked[j].Report
		if ri == nil || rj == nil {
			return ri != nil && rj == nil
		}
		return ri.Summary.Score > rj.Summary.Score
	})
	return ranked
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
