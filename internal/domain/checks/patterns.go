package checks

import (
	"context"
	"regexp"

	"github.com/plugforge/plugforge/internal/domain"
)

// PatternsCheck validates the Metalsmith plugin shape: a two-phase factory
// (an options-taking outer function returning the worker) and the
// callback-based completion protocol of the returned worker.
type PatternsCheck struct{}

func NewPatternsCheck() *PatternsCheck { return &PatternsCheck{} }

func (c *PatternsCheck) Name() Name { return Patterns }

var (
	// Outer factory returning the worker function.
	factoryReturnRe = regexp.MustCompile(`(?s)return\s+(?:async\s+)?(?:function\s*\w*\s*)?\(?\s*files\s*,\s*metalsmith`)
	// Worker signature, with or without the done callback.
	workerSigRe   = regexp.MustCompile(`\(\s*files\s*,\s*metalsmith\s*(?:,\s*done\s*)?\)`)
	doneParamRe   = regexp.MustCompile(`\(\s*files\s*,\s*metalsmith\s*,\s*done\s*\)`)
	doneCallRe    = regexp.MustCompile(`\bdone\s*\(`)
	asyncWorkerRe = regexp.MustCompile(`return\s+async\s|async\s*\(\s*files`)
)

func (c *PatternsCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	content, ok := readPluginFile(cc.PluginPath, mainSourceFile(cc.Config))
	if !ok {
		rs.AddWarning("Main source file not found; plugin pattern check skipped")
		return nil
	}

	if factoryReturnRe.MatchString(content) {
		rs.AddPassed("Two-phase factory: options function returns the plugin worker")
	} else {
		rs.AddWarning("Expected a factory that takes options and returns function (files, metalsmith, done)")
	}

	if !workerSigRe.MatchString(content) {
		rs.AddWarning("Plugin worker signature (files, metalsmith[, done]) not found")
		return nil
	}

	switch {
	case doneParamRe.MatchString(content) && doneCallRe.MatchString(content):
		rs.AddPassed("Completion protocol: done callback is invoked")
	case doneParamRe.MatchString(content):
		rs.AddFailed("Plugin accepts a done callback but never calls it; the build would hang")
	case asyncWorkerRe.MatchString(content):
		rs.AddPassed("Completion protocol: async worker resolves without a callback")
	default:
		rs.AddPassed("Synchronous worker without a done callback")
	}

	return nil
}
