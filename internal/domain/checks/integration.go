package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/plugforge/plugforge/internal/domain"
)

// IntegrationCheck verifies how well the plugin advertises its place in the
// Metalsmith ecosystem: framework compatibility metadata and references to
// commonly composed plugins.
type IntegrationCheck struct{}

func NewIntegrationCheck() *IntegrationCheck { return &IntegrationCheck{} }

func (c *IntegrationCheck) Name() Name { return Integration }

// Plugins most Metalsmith sites compose with; mentioning them in the README
// signals the author thought about pipeline ordering.
var ecosystemPlugins = []string{
	"metalsmith-layouts",
	"metalsmith-markdown",
	"metalsmith-collections",
	"metalsmith-permalinks",
	"metalsmith-sass",
}

func (c *IntegrationCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	pkg, ok := loadPackageJSON(cc.PluginPath)
	if !ok {
		rs.AddWarning("package.json not readable; integration check skipped")
		return nil
	}

	if declaresMetalsmith(pkg) {
		rs.AddPassed("Declares metalsmith compatibility in dependencies")
	} else {
		rs.AddRecommendation("Declare metalsmith as a peerDependency to signal compatibility")
	}

	if keywordsMention(pkg, "metalsmith") {
		rs.AddPassed("Keywords mention metalsmith")
	} else {
		rs.AddRecommendation(`Add "metalsmith" and "metalsmith-plugin" to keywords for discoverability`)
	}

	readme, ok := readPluginFile(cc.PluginPath, "README.md")
	if !ok {
		return nil
	}
	for _, p := range ecosystemPlugins {
		if strings.Contains(readme, p) {
			rs.AddPassed(fmt.Sprintf("README shows composition with %s", p))
			return nil
		}
	}
	rs.AddRecommendation("Document how this plugin composes with common plugins such as metalsmith-layouts or metalsmith-markdown")

	return nil
}

func declaresMetalsmith(pkg map[string]any) bool {
	for _, key := range []string{"peerDependencies", "dependencies", "devDependencies"} {
		deps, _ := pkg[key].(map[string]any)
		if _, ok := deps["metalsmith"]; ok {
			return true
		}
	}
	return false
}

func keywordsMention(pkg map[string]any, word string) bool {
	keywords, _ := pkg["keywords"].([]any)
	for _, k := range keywords {
		if s, ok := k.(string); ok && strings.Contains(strings.ToLower(s), word) {
			return true
		}
	}
	return false
}
