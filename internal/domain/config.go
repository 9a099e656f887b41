package domain

// ValidationConfig is the effective rule configuration for one validation
// run. Values come from built-in defaults deep-merged with an optional
// per-plugin JSON document; the resolved value is never mutated afterwards.
type ValidationConfig struct {
	Rules           RulesConfig           `json:"rules"`
	Recommendations RecommendationsConfig `json:"recommendations"`
}

// RulesConfig groups the per-check rule parameters.
type RulesConfig struct {
	Structure     StructureRules     `json:"structure"`
	Tests         TestRules          `json:"tests"`
	Documentation DocumentationRules `json:"documentation"`
	PackageJSON   PackageJSONRules   `json:"packageJson"`
}

type StructureRules struct {
	Enabled          bool     `json:"enabled"`
	RequiredDirs     []string `json:"requiredDirectories"`
	RequiredFiles    []string `json:"requiredFiles"`
	RecommendedDirs  []string `json:"recommendedDirectories"`
	RecommendedFiles []string `json:"recommendedFiles"`
}

type TestRules struct {
	Enabled           bool    `json:"enabled"`
	CoverageThreshold float64 `json:"coverageThreshold"`
}

type DocumentationRules struct {
	Enabled             bool     `json:"enabled"`
	RequiredSections    []string `json:"requiredSections"`
	RecommendedSections []string `json:"recommendedSections"`
}

type PackageJSONRules struct {
	Enabled            bool     `json:"enabled"`
	NamePrefix         string   `json:"namePrefix"`
	RequiredFields     []string `json:"requiredFields"`
	RecommendedFields  []string `json:"recommendedFields"`
	RequiredScripts    []string `json:"requiredScripts"`
	RecommendedScripts []string `json:"recommendedScripts"`
}

// RecommendationsConfig toggles report verbosity.
type RecommendationsConfig struct {
	ShowCommands        bool `json:"showCommands"`
	TemplateSuggestions bool `json:"templateSuggestions"`
}

// DefaultValidationConfig constructs the built-in defaults. A fresh value is
// returned on every call so no caller can mutate a shared default in place.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		Rules: RulesConfig{
			Structure: StructureRules{
				Enabled:          true,
				RequiredDirs:     []string{"src", "test"},
				RequiredFiles:    []string{"src/index.js", "README.md", "package.json"},
				RecommendedDirs:  []string{"lib"},
				RecommendedFiles: []string{".editorconfig", ".prettierrc"},
			},
			Tests: TestRules{
				Enabled:           true,
				CoverageThreshold: 80,
			},
			Documentation: DocumentationRules{
				Enabled:             true,
				RequiredSections:    []string{"Installation", "Usage"},
				RecommendedSections: []string{"Options", "Examples", "License"},
			},
			PackageJSON: PackageJSONRules{
				Enabled:            true,
				NamePrefix:         "metalsmith-",
				RequiredFields:     []string{"name", "version", "description", "license"},
				RecommendedFields:  []string{"keywords", "repository", "author"},
				RequiredScripts:    []string{"test"},
				RecommendedScripts: []string{"lint", "coverage", "release"},
			},
		},
		Recommendations: RecommendationsConfig{
			ShowCommands:        true,
			TemplateSuggestions: true,
		},
	}
}
