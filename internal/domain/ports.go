package domain

import "context"

// ConfigResolver resolves the effective validation configuration for a
// plugin directory. Resolution never fails: a missing or unparsable config
// document falls back to the built-in defaults.
type ConfigResolver interface {
	Resolve(pluginPath string) ValidationConfig
}

// CommandRunner executes an external command inside a working directory,
// capturing stdout and stderr independently and enforcing a hard timeout.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ProcessResult
}

// GitInfo reports version-control metadata for a plugin directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// AuditHistory persists audit summaries across runs.
type AuditHistory interface {
	Save(rootPath string, entry AuditEntry) error
	Load(rootPath string) ([]AuditEntry, error)
}
