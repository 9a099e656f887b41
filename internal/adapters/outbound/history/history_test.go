package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugforge/plugforge/internal/adapters/outbound/history"
	"github.com/plugforge/plugforge/internal/domain"
)

func TestLoad_NoHistoryYet(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAndLoad_Appends(t *testing.T) {
	root := t.TempDir()
	h := history.New()

	first := domain.AuditEntry{
		Timestamp: "2026-08-31T10:00:00Z",
		Plugin:    "metalsmith-demo",
		Path:      "/plugins/metalsmith-demo",
		Score:     92,
		Passed:    true,
	}
	second := domain.AuditEntry{
		Timestamp: "2026-08-31T11:00:00Z",
		Plugin:    "metalsmith-other",
		Score:     40,
	}

	require.NoError(t, h.Save(root, first))
	require.NoError(t, h.Save(root, second))

	entries, err := h.Load(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestSave_CreatesHistoryDirectory(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, history.New().Save(root, domain.AuditEntry{Plugin: "p"}))

	_, err := os.Stat(filepath.Join(root, ".plugforge", "history", "audits.json"))
	assert.NoError(t, err)
}

func TestLoad_CorruptFileIsAnError(t *testing.T) {
	root := t.TempDir()
	fp := filepath.Join(root, ".plugforge", "history", "audits.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	require.NoError(t, os.WriteFile(fp, []byte("{ not json"), 0o644))

	_, err := history.New().Load(root)

	assert.Error(t, err)
}
