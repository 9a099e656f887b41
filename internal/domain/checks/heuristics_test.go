package checks_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugforge/plugforge/internal/domain"
)

func withMainSource(t *testing.T, source string) string {
	t.Helper()
	files := validPluginFiles()
	files["src/index.js"] = source
	return writePlugin(t, files)
}

func TestJSDocCheck_CoverageRatio(t *testing.T) {
	t.Run("fully documented passes", func(t *testing.T) {
		dir := withMainSource(t, `
/** One. */
function one() {}
/** Two. */
const two = () => {};
`)
		rs := runChecks(t, []string{"jsdoc"}, defaultContext(dir), &stubRunner{})

		assert.Contains(t, rs.Passed, "JSDoc coverage looks good (2 of 2 functions documented)")
	})

	t.Run("under 80 percent recommends", func(t *testing.T) {
		dir := withMainSource(t, `
/** One. */
function one() {}
function two() {}
function three() {}
`)
		rs := runChecks(t, []string{"jsdoc"}, defaultContext(dir), &stubRunner{})

		assert.True(t, hasRecommendationContaining(rs, "Document more functions with JSDoc (1 of 3 covered)"))
	})

	t.Run("no functions warns", func(t *testing.T) {
		dir := withMainSource(t, "const x = 1;\n")
		rs := runChecks(t, []string{"jsdoc"}, defaultContext(dir), &stubRunner{})

		require.Len(t, rs.Warnings, 1)
		assert.Contains(t, rs.Warnings[0], "No function declarations found")
	})
}

func TestJSDocCheck_MissingMainFileWarns(t *testing.T) {
	files := validPluginFiles()
	delete(files, "src/index.js")
	dir := writePlugin(t, files)

	rs := runChecks(t, []string{"jsdoc"}, defaultContext(dir), &stubRunner{})

	require.Len(t, rs.Warnings, 1)
	assert.Contains(t, rs.Warnings[0], "Main source file not found")
}

func TestPerformanceCheck_Smells(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			"regex construction in loop",
			"for (const f of files) {\n  const re = new RegExp(pattern);\n}\n",
			"Compile regular expressions outside loops",
		},
		{
			"string concatenation in loop",
			"while (more) {\n  out += chunk;\n}\n",
			"Avoid string concatenation in loops",
		},
		{
			"includes in loop",
			"for (const f of files) {\n  if (seen.includes(f)) continue;\n}\n",
			"use a Set or Map for membership checks",
		},
		{
			"sequential await in loop",
			"for (const f of files) {\n  await render(f);\n}\n",
			"consider batching with Promise.all",
		},
		{
			"regex construction in c-style loop",
			"for (let i = 0; i < files.length; i++) {\n  const re = new RegExp(pattern);\n}\n",
			"Compile regular expressions outside loops",
		},
		{
			"string concatenation in c-style loop",
			"for (let i = 0; i < n; i++) {\n  out += chunk;\n}\n",
			"Avoid string concatenation in loops",
		},
		{
			"includes in c-style loop",
			"for (let i = 0; i < files.length; i++) {\n  if (seen.includes(files[i])) continue;\n}\n",
			"use a Set or Map for membership checks",
		},
		{
			"await in c-style loop",
			"for (let i = 0; i < files.length; i++) {\n  await render(files[i]);\n}\n",
			"consider batching with Promise.all",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := withMainSource(t, tc.source)
			rs := runChecks(t, []string{"performance"}, defaultContext(dir), &stubRunner{})

			assert.True(t, hasRecommendationContaining(rs, tc.want), "findings: %v", rs.Recommendations)
			assert.NotContains(t, rs.Passed, "No performance anti-patterns detected")
		})
	}
}

func TestPerformanceCheck_CStyleLoopWithSeveralSmells(t *testing.T) {
	dir := withMainSource(t, `
for (let i = 0; i < files.length; i++) {
  const re = new RegExp(pattern);
  out += chunk;
  if (seen.includes(files[i])) continue;
}
`)
	rs := runChecks(t, []string{"performance"}, defaultContext(dir), &stubRunner{})

	assert.True(t, hasRecommendationContaining(rs, "Compile regular expressions outside loops"))
	assert.True(t, hasRecommendationContaining(rs, "Avoid string concatenation in loops"))
	assert.True(t, hasRecommendationContaining(rs, "use a Set or Map for membership checks"))
	assert.NotContains(t, rs.Passed, "No performance anti-patterns detected")
}

func TestPerformanceCheck_AwaitWithPromiseAllAccepted(t *testing.T) {
	dir := withMainSource(t, `
for (const batch of batches) {
  await Promise.all(batch.map(render));
}
`)
	rs := runChecks(t, []string{"performance"}, defaultContext(dir), &stubRunner{})

	assert.False(t, hasRecommendationContaining(rs, "Promise.all"),
		"batched awaits are the recommended shape, not a smell")
}

func TestPerformanceCheck_CleanSourcePasses(t *testing.T) {
	dir := withMainSource(t, `
const re = /cached/;
function demo(files) {
  const parts = [];
  for (const f of Object.keys(files)) {
    parts.push(f);
  }
  return parts.join('');
}
`)
	rs := runChecks(t, []string{"performance"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "No performance anti-patterns detected")
	assert.Empty(t, rs.Recommendations)
}

func TestPerformanceCheck_PatternOutsideLoopIgnored(t *testing.T) {
	dir := withMainSource(t, `
const re = new RegExp(pattern);
let out = '';
out += 'once';
`)
	rs := runChecks(t, []string{"performance"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "No performance anti-patterns detected")
}

func TestSecurityCheck_Smells(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			"eval",
			"const v = eval(userInput);\n",
			"Dynamic code execution detected",
		},
		{
			"new Function",
			"const fn = new Function('return 1');\n",
			"Dynamic code execution detected",
		},
		{
			"hard-coded secret",
			`const apiKey = "sk_live_abcdef123456";` + "\n",
			"Possible hard-coded secret",
		},
		{
			"nested quantifiers",
			"const re = /(a+)+b/;\n",
			"catastrophic backtracking",
		},
		{
			"shell interpolation",
			"execSync(`convert ${file} out.png`);\n",
			"Shell command built from interpolated input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := withMainSource(t, tc.source)
			rs := runChecks(t, []string{"security"}, defaultContext(dir), &stubRunner{})

			found := false
			for _, w := range rs.Warnings {
				if strings.Contains(w, tc.want) {
					found = true
				}
			}
			assert.True(t, found, "warnings: %v", rs.Warnings)
			assert.Empty(t, rs.Failed, "security findings are warnings, never failures")
		})
	}
}

func TestSecurityCheck_SanitizedShellCallAccepted(t *testing.T) {
	dir := withMainSource(t, `
import shellQuote from 'shell-quote';
execSync(`+"`convert ${shellQuote.quote([file])} out.png`"+`);
`)
	rs := runChecks(t, []string{"security"}, defaultContext(dir), &stubRunner{})

	warningsJoined := strings.Join(rs.Warnings, "\n")
	assert.NotContains(t, warningsJoined, "Shell command built")
}

func TestSecurityCheck_CleanSourcePasses(t *testing.T) {
	dir := writePlugin(t, validPluginFiles())
	rs := runChecks(t, []string{"security"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "No security anti-patterns detected")
	assert.Empty(t, rs.Warnings)
}

func TestHeuristicChecks_FindingsNeverFail(t *testing.T) {
	dir := withMainSource(t, `
for (const f of files) {
  const re = new RegExp((a+)+);
  out += eval(f);
  await run(f);
}
`)
	cc := defaultContext(dir)
	rs := domain.NewResultSet()
	for _, name := range []string{"jsdoc", "performance", "security"} {
		rsOne := runChecks(t, []string{name}, cc, &stubRunner{})
		rs.Failed = append(rs.Failed, rsOne.Failed...)
	}

	assert.Empty(t, rs.Failed)
}
