// Package gitinfo reads version-control metadata from plugin directories so
// reports and audit history entries can be stamped with the commit they
// were produced against.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// shortHashLen is the abbreviation length used wherever a hash is shown
// next to a plugin name.
const shortHashLen = 7

// GitInfoAdapter implements domain.GitInfo using go-git. Plugins are often
// developed as standalone repositories; a plugin directory that is not one
// is normal input, not an error.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// CommitHash returns the full HEAD commit hash of the repository rooted at
// path. A repository with no commits yet has no HEAD and yields an error.
func (g *GitInfoAdapter) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ShortHash abbreviates a full commit hash to the display form used in
// audit summaries. Input already at or below the display length comes back
// unchanged, so it is safe to call on hashes loaded from history files.
func ShortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}
