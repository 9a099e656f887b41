package domain

// Category classifies a single validation finding.
type Category string

const (
	CategoryPassed         Category = "passed"
	CategoryFailed         Category = "failed"
	CategoryWarning        Category = "warning"
	CategoryRecommendation Category = "recommendation"
)

// Finding is one categorized observation produced by a check.
// Findings are append-only: once recorded in a ResultSet they are never
// mutated or removed.
type Finding struct {
	Message  string   `json:"message"`
	Category Category `json:"category"`
}

// ResultSet accumulates findings for a single validation run, one ordered
// bucket per category. Each invocation owns its own ResultSet; it is
// populated by the check pipeline, consumed once by the report generator,
// then discarded.
type ResultSet struct {
	Passed          []string `json:"passed"`
	Failed          []string `json:"failed"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// NewResultSet returns an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

func (r *ResultSet) AddPassed(msg string)  { r.Passed = append(r.Passed, msg) }
func (r *ResultSet) AddFailed(msg string)  { r.Failed = append(r.Failed, msg) }
func (r *ResultSet) AddWarning(msg string) { r.Warnings = append(r.Warnings, msg) }

func (r *ResultSet) AddRecommendation(msg string) {
	r.Recommendations = append(r.Recommendations, msg)
}

// Add records a finding under its category. Unknown categories are treated
// as warnings so a finding is never dropped.
func (r *ResultSet) Add(f Finding) {
	switch f.Category {
	case CategoryPassed:
		r.AddPassed(f.Message)
	case CategoryFailed:
		r.AddFailed(f.Message)
	case CategoryRecommendation:
		r.AddRecommendation(f.Message)
	default:
		r.AddWarning(f.Message)
	}
}

// Total returns the number of findings across all four buckets.
func (r *ResultSet) Total() int {
	return len(r.Passed) + len(r.Failed) + len(r.Warnings) + len(r.Recommendations)
}
