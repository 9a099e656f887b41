// Package runner executes plugin-supplied commands (test and coverage
// scripts) with a hard timeout and independent stdout/stderr capture.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/parse"
)

// DefaultTimeout bounds every external command. The timeout is the only
// cancellation mechanism: a command that never exits is forcibly killed and
// reported as a failure, never left hanging.
const DefaultTimeout = 60 * time.Second

// ExecRunner implements domain.CommandRunner with os/exec.
type ExecRunner struct {
	timeout time.Duration
}

func New() *ExecRunner {
	return &ExecRunner{timeout: DefaultTimeout}
}

// NewWithTimeout is used by tests to shrink the deadline.
func NewWithTimeout(d time.Duration) *ExecRunner {
	return &ExecRunner{timeout: d}
}

// Run executes name with args inside dir. Success is exit code zero; on
// success the summary is extracted from the combined output, otherwise it
// describes the failure, with a timeout-specific message when the deadline
// fired.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) domain.ProcessResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := domain.ProcessResult{
		Output:       stdout.String(),
		StderrOutput: stderr.String(),
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.Summary = fmt.Sprintf("timed out after %s", r.timeout)
		} else {
			res.Summary = fmt.Sprintf("command failed: %v", err)
		}
		return res
	}

	res.Success = true
	res.Summary = parse.TestSummary(res.Output + "\n" + res.StderrOutput)
	return res
}
