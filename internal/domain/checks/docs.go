package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/plugforge/plugforge/internal/domain"
)

// DocsCheck scans the README against required and recommended section
// headings, and looks for badges, code examples and a license file.
type DocsCheck struct{}

func NewDocsCheck() *DocsCheck { return &DocsCheck{} }

func (c *DocsCheck) Name() Name { return Docs }

var (
	badgeRe     = regexp.MustCompile(`!\[[^\]]*\]\(`)
	codeFenceRe = regexp.MustCompile("(?m)^```")
)

var licenseFileNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE"}

func (c *DocsCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	rules := cc.Config.Rules.Documentation
	if !rules.Enabled {
		return nil
	}

	readme, ok := readPluginFile(cc.PluginPath, "README.md")
	if !ok {
		// Presence of README.md is the structure check's concern.
		rs.AddWarning("README.md not found; documentation checks skipped")
		return nil
	}

	for _, section := range rules.RequiredSections {
		if hasMarkdownSection(readme, section) {
			rs.AddPassed(fmt.Sprintf("README has a %s section", section))
		} else {
			rs.AddFailed(fmt.Sprintf("README missing required section: %s", section))
		}
	}

	for _, section := range rules.RecommendedSections {
		if hasMarkdownSection(readme, section) {
			continue
		}
		msg := fmt.Sprintf("README missing recommended section: %s", section)
		if cc.Config.Recommendations.TemplateSuggestions {
			msg += fmt.Sprintf(" (run `plugforge config init` for a README outline including %s)", section)
		}
		rs.AddRecommendation(msg)
	}

	if badgeRe.MatchString(readme) {
		rs.AddPassed("README includes badges")
	} else {
		rs.AddRecommendation("Add status badges (build, coverage, npm version) to the README")
	}

	if codeFenceRe.MatchString(readme) {
		rs.AddPassed("README includes code examples")
	} else {
		rs.AddRecommendation("Add fenced code examples to the README")
	}

	if hasLicenseFile(cc.PluginPath) {
		rs.AddPassed("License file present")
	} else {
		msg := "Add a LICENSE file"
		if cc.Config.Recommendations.ShowCommands {
			msg += " (e.g. `npx license mit > LICENSE`)"
		}
		rs.AddRecommendation(msg)
	}

	return nil
}

// hasMarkdownSection reports whether the README contains a heading of level
// 1-4 naming the section, matched case-insensitively. The marker must be
// followed by whitespace so five or more # characters never count as a
// level-4 heading.
func hasMarkdownSection(readme, section string) bool {
	re := regexp.MustCompile(`(?im)^#{1,4}\s+[^#\n]*\b` + regexp.QuoteMeta(strings.TrimSpace(section)) + `\b`)
	return re.MatchString(readme)
}

func hasLicenseFile(pluginPath string) bool {
	for _, name := range licenseFileNames {
		if fileExists(filepath.Join(pluginPath, name)) {
			return true
		}
	}
	return false
}
