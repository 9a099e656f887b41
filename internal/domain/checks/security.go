package checks

import (
	"context"
	"regexp"

	"github.com/plugforge/plugforge/internal/domain"
)

// SecurityCheck scans the main source file for build-time security smells:
// dynamic code execution, hard-coded secrets, ReDoS-shaped regular
// expressions and shell-injection risk. Heuristics only; findings are
// warnings, never hard failures, because a static-site plugin runs at build
// time under the author's control.
type SecurityCheck struct{}

func NewSecurityCheck() *SecurityCheck { return &SecurityCheck{} }

func (c *SecurityCheck) Name() Name { return Security }

var (
	dynamicExecRe = regexp.MustCompile(`\beval\s*\(|new\s+Function\s*\(`)
	secretRe      = regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password)\s*[:=]\s*['"][A-Za-z0-9_\-]{8,}['"]`)
	redosRe       = regexp.MustCompile(`\([^)]*[+*][^)]*\)[+*]`)
	shellExecRe   = regexp.MustCompile("exec(?:Sync)?\\s*\\(\\s*`[^`]*\\$\\{")
	sanitizeRe    = regexp.MustCompile(`(?i)sanitiz|escapeShell|shellQuote|shell-quote`)
)

func (c *SecurityCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	content, ok := readPluginFile(cc.PluginPath, mainSourceFile(cc.Config))
	if !ok {
		rs.AddWarning("Main source file not found; security check skipped")
		return nil
	}

	clean := true

	if dynamicExecRe.MatchString(content) {
		rs.AddWarning("Dynamic code execution detected (eval / new Function); prefer static dispatch")
		clean = false
	}

	if secretRe.MatchString(content) {
		rs.AddWarning("Possible hard-coded secret in source; read credentials from the environment instead")
		clean = false
	}

	if redosRe.MatchString(content) {
		rs.AddWarning("Regular expression with nested quantifiers found; verify it is not vulnerable to catastrophic backtracking")
		clean = false
	}

	if shellExecRe.MatchString(content) && !sanitizeRe.MatchString(content) {
		rs.AddWarning("Shell command built from interpolated input without visible sanitization")
		clean = false
	}

	if clean {
		rs.AddPassed("No security anti-patterns detected")
	}

	return nil
}
