package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugforge/plugforge/internal/adapters/outbound/gitinfo"
)

func TestIsGitRepo(t *testing.T) {
	dir := t.TempDir()
	adapter := gitinfo.New()

	assert.False(t, adapter.IsGitRepo(dir))

	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	assert.True(t, adapter.IsGitRepo(dir))
}

func TestCommitHash(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	want, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	got, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Equal(t, want.String(), got)
}

func TestCommitHash_EmptyRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = gitinfo.New().CommitHash(dir)

	assert.Error(t, err, "a repo without commits has no HEAD")
}

func TestCommitHash_NotARepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())

	assert.Error(t, err)
}

func TestShortHash(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"full hash truncated", "0123456789abcdef0123456789abcdef01234567", "0123456"},
		{"already short", "0123456", "0123456"},
		{"shorter than display length", "012", "012"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gitinfo.ShortHash(tc.in))
		})
	}
}
