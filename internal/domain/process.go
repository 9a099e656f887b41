package domain

// ProcessResult is the outcome of one external command execution. It is
// owned exclusively by the check that requested the run and is never shared
// across checks.
type ProcessResult struct {
	Success      bool   `json:"success"`
	Output       string `json:"output"`
	StderrOutput string `json:"stderr_output"`
	Summary      string `json:"summary"`
}

// CheckContext is the read-only bundle passed into every check: the plugin
// root path, the resolved configuration, and the functional-mode flag.
// Checks must not mutate it.
type CheckContext struct {
	PluginPath string
	Config     ValidationConfig
	Functional bool
}
