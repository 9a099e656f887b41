package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationCheck_FullyAdvertisedPlugin(t *testing.T) {
	dir := writePlugin(t, validPluginFiles())
	rs := runChecks(t, []string{"integration"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "Declares metalsmith compatibility in dependencies")
	assert.Contains(t, rs.Passed, "Keywords mention metalsmith")
	assert.Contains(t, rs.Passed, "README shows composition with metalsmith-layouts")
	assert.Empty(t, rs.Failed)
}

func TestIntegrationCheck_NoDeclaredCompatibility(t *testing.T) {
	files := validPluginFiles()
	files["package.json"] = `{"name":"metalsmith-demo","keywords":["static-site"]}`
	files["README.md"] = "# demo\n"
	dir := writePlugin(t, files)

	rs := runChecks(t, []string{"integration"}, defaultContext(dir), &stubRunner{})

	assert.True(t, hasRecommendationContaining(rs, "Declare metalsmith as a peerDependency"))
	assert.True(t, hasRecommendationContaining(rs, `Add "metalsmith" and "metalsmith-plugin" to keywords`))
	assert.True(t, hasRecommendationContaining(rs, "composes with common plugins"))
}

func TestIntegrationCheck_DevDependencyCountsAsCompatibility(t *testing.T) {
	files := validPluginFiles()
	files["package.json"] = `{"name":"metalsmith-demo","devDependencies":{"metalsmith":"^2.6.0"}}`
	dir := writePlugin(t, files)

	rs := runChecks(t, []string{"integration"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "Declares metalsmith compatibility in dependencies")
}

func TestIntegrationCheck_UnreadablePackageJSONSkipsWithWarning(t *testing.T) {
	files := validPluginFiles()
	files["package.json"] = "{ broken"
	dir := writePlugin(t, files)

	rs := runChecks(t, []string{"integration"}, defaultContext(dir), &stubRunner{})

	require.Len(t, rs.Warnings, 1)
	assert.Contains(t, rs.Warnings[0], "integration check skipped")
}
