package domain

// AuditEntry is one persisted line of audit history: the score a plugin
// achieved at a point in time, stamped with its commit hash when the plugin
// directory is a git repository.
type AuditEntry struct {
	Timestamp  string `json:"timestamp"`
	Plugin     string `json:"plugin"`
	Path       string `json:"path"`
	Score      int    `json:"score"`
	Passed     bool   `json:"passed"`
	CommitHash string `json:"commit_hash,omitempty"`
}

// AuditResult pairs one plugin's validation report with the batch position
// it was requested in. Batch audits run concurrently against different
// plugin directories; each report owns its own ResultSet.
type AuditResult struct {
	Report *ValidationReport `json:"report,omitempty"`
	Err    string            `json:"error,omitempty"`
}
