package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternsCheck_FactoryWithDoneCallback(t *testing.T) {
	dir := writePlugin(t, validPluginFiles())
	rs := runChecks(t, []string{"metalsmith-patterns"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "Two-phase factory: options function returns the plugin worker")
	assert.Contains(t, rs.Passed, "Completion protocol: done callback is invoked")
	assert.Empty(t, rs.Failed)
}

func TestPatternsCheck_DoneAcceptedButNeverCalledFails(t *testing.T) {
	dir := withMainSource(t, `
export default function demo(options) {
  return function (files, metalsmith, done) {
    delete files['skip.html'];
  };
}
`)
	rs := runChecks(t, []string{"metalsmith-patterns"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Failed, "Plugin accepts a done callback but never calls it; the build would hang")
}

func TestPatternsCheck_AsyncWorkerWithoutCallbackPasses(t *testing.T) {
	dir := withMainSource(t, `
export default function demo(options) {
  return async (files, metalsmith) => {
    await render(files);
  };
}
`)
	rs := runChecks(t, []string{"metalsmith-patterns"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "Completion protocol: async worker resolves without a callback")
	assert.Empty(t, rs.Failed)
}

func TestPatternsCheck_SynchronousWorkerPasses(t *testing.T) {
	dir := withMainSource(t, `
module.exports = function demo(options) {
  return function (files, metalsmith) {
    Object.keys(files).forEach(mark);
  };
}
`)
	rs := runChecks(t, []string{"metalsmith-patterns"}, defaultContext(dir), &stubRunner{})

	assert.Contains(t, rs.Passed, "Synchronous worker without a done callback")
}

func TestPatternsCheck_NoFactoryShapeWarns(t *testing.T) {
	dir := withMainSource(t, "export function helper(a, b) { return a + b; }\n")
	rs := runChecks(t, []string{"metalsmith-patterns"}, defaultContext(dir), &stubRunner{})

	assert.NotEmpty(t, rs.Warnings)
	assert.Empty(t, rs.Failed, "a missing factory is a warning, not a failure")
}
