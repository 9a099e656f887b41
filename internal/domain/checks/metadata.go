package checks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/plugforge/plugforge/internal/domain"
)

// PackageJSONCheck validates the plugin's package metadata: required
// top-level fields, entry point, naming convention, recommended fields and
// scripts, ES-module signaling, and release-automation consistency.
type PackageJSONCheck struct{}

func NewPackageJSONCheck() *PackageJSONCheck { return &PackageJSONCheck{} }

func (c *PackageJSONCheck) Name() Name { return PackageJSON }

func (c *PackageJSONCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	rules := cc.Config.Rules.PackageJSON
	if !rules.Enabled {
		return nil
	}

	pkg, ok := loadPackageJSON(cc.PluginPath)
	if !ok {
		rs.AddFailed("package.json is missing or not valid JSON")
		return nil
	}

	for _, field := range rules.RequiredFields {
		if _, present := pkg[field]; present {
			rs.AddPassed(fmt.Sprintf("package.json has %s", field))
		} else {
			rs.AddFailed(fmt.Sprintf("package.json missing required field: %s", field))
		}
	}

	if _, hasMain := pkg["main"]; hasMain {
		rs.AddPassed("Entry point defined (main)")
	} else if _, hasExports := pkg["exports"]; hasExports {
		rs.AddPassed("Entry point defined (exports)")
	} else {
		rs.AddFailed("No entry point: package.json needs main or exports")
	}

	c.checkNamingConvention(rules, pkg, rs)

	for _, field := range rules.RecommendedFields {
		if _, present := pkg[field]; !present {
			rs.AddRecommendation(fmt.Sprintf("Consider adding %s to package.json", field))
		}
	}

	scripts := pkgScripts(pkg)
	for _, name := range rules.RequiredScripts {
		if _, present := scripts[name]; present {
			rs.AddPassed(fmt.Sprintf("Script %q defined", name))
		} else {
			rs.AddFailed(fmt.Sprintf("Missing required script: %s", name))
		}
	}
	for _, name := range rules.RecommendedScripts {
		if _, present := scripts[name]; !present {
			rs.AddRecommendation(fmt.Sprintf("Consider adding a %q script", name))
		}
	}

	if pkgString(pkg, "type") == "module" {
		rs.AddPassed("Declared as an ES module")
	} else {
		rs.AddRecommendation(`Declare "type": "module" to ship a native ES module`)
	}

	c.checkReleaseAutomation(cc, scripts, rs)

	return nil
}

// checkNamingConvention verifies the configured name prefix. An empty
// prefix disables the convention entirely: no finding is emitted either way.
func (c *PackageJSONCheck) checkNamingConvention(rules domain.PackageJSONRules, pkg map[string]any, rs *domain.ResultSet) {
	if rules.NamePrefix == "" {
		return
	}
	name := pkgString(pkg, "name")
	if name == "" {
		return // the required-fields pass already reported the missing name
	}
	if strings.HasPrefix(name, rules.NamePrefix) {
		rs.AddPassed(fmt.Sprintf("Plugin name follows the %s prefix convention", rules.NamePrefix))
		return
	}
	msg := fmt.Sprintf("Plugin name should start with %q", rules.NamePrefix)
	if suggestion := kebabName(rules.NamePrefix, name); suggestion != "" {
		msg += fmt.Sprintf(" (e.g. %q)", suggestion)
	}
	rs.AddRecommendation(msg)
}

// kebabName converts a camelCase plugin name into a prefix-conforming
// kebab-case suggestion.
func kebabName(prefix, name string) string {
	words := camelcase.Split(name)
	if len(words) < 2 {
		return prefix + strings.ToLower(name)
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return prefix + strings.Join(words, "-")
}

// Release automation policies a plugin's CLAUDE.md can endorse. The two
// strategies are mutually exclusive: token injection inline in the npm
// release script, or a wrapper shell script that owns the token handling.
type releasePolicy int

const (
	releasePolicyNone releasePolicy = iota
	releasePolicyInline
	releasePolicyWrapper
)

var (
	tokenRetrievalRe = regexp.MustCompile(`(?i)npm[_-]?token`)
	wrapperScriptRe  = regexp.MustCompile(`release\.sh`)
)

// checkReleaseAutomation cross-validates the release script against the
// plugin's policy document. When the policy already adopted one strategy,
// only that strategy is recommended; generic both-ways advice is reserved
// for plugins with no adopted policy.
func (c *PackageJSONCheck) checkReleaseAutomation(cc domain.CheckContext, scripts map[string]string, rs *domain.ResultSet) {
	release, ok := scripts["release"]
	if !ok || !tokenRetrievalRe.MatchString(release) {
		return
	}

	switch classifyReleasePolicy(cc.PluginPath) {
	case releasePolicyInline:
		rs.AddRecommendation("Release script retrieves an npm token inline, matching the strategy adopted in CLAUDE.md; keep the token injection in the npm script")
	case releasePolicyWrapper:
		rs.AddRecommendation("CLAUDE.md adopts a wrapper release script; move the npm token retrieval out of package.json into ./scripts/release.sh")
	default:
		rs.AddRecommendation("Release script retrieves an npm token; document a release strategy (inline npm-script token injection or a ./scripts/release.sh wrapper) in CLAUDE.md")
	}
}

// classifyReleasePolicy reads the optional CLAUDE.md policy document and
// classifies which release strategy it endorses. A mention of the wrapper
// script wins over a bare token mention, since wrapper-based policies still
// talk about the token.
func classifyReleasePolicy(pluginPath string) releasePolicy {
	policy, ok := readPluginFile(pluginPath, "CLAUDE.md")
	if !ok {
		return releasePolicyNone
	}
	if wrapperScriptRe.MatchString(policy) {
		return releasePolicyWrapper
	}
	if tokenRetrievalRe.MatchString(policy) {
		return releasePolicyInline
	}
	return releasePolicyNone
}
