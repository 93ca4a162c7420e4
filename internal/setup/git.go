package setup

import (
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kindling-dev/kindling/internal/errors"
)

// CommitMessage is the fixed message of the fresh initial commit.
const CommitMessage = "feat: initialize project from template"

const (
	fallbackAuthorName  = "kindling"
	fallbackAuthorEmail = "setup@kindling.local"
)

// ResetVersionControl discards the template's git history and starts a
// fresh one: the .git directory is removed unconditionally if present,
// the repository is reinitialized, all remaining files are staged, and
// a single commit is created. The author name, when provided, becomes
// the commit author so the reset works on machines with no git
// identity configured.
//
// Every error returned is a recoverable VCS error; callers are
// expected to downgrade it to a warning.
func ResetVersionControl(root, author string) error {
	gitDir := filepath.Join(root, git.GitDirName)
	if _, err := os.Stat(gitDir); err == nil {
		if err := os.RemoveAll(gitDir); err != nil {
			return errors.WrapVCS(err, errors.ErrCodeGitReset,
				"failed to remove existing git history").WithPath(gitDir)
		}
	}

	repo, err := git.PlainInit(root, false)
	if err != nil {
		return errors.WrapVCS(err, errors.ErrCodeGitReset,
			"failed to initialize repository").WithPath(root)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return errors.WrapVCS(err, errors.ErrCodeGitReset,
			"failed to open worktree").WithPath(root)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return errors.WrapVCS(err, errors.ErrCodeGitReset,
			"failed to stage files").WithPath(root)
	}

	name := author
	if name == "" {
		name = fallbackAuthorName
	}

	_, err = worktree.Commit(CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: fallbackAuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return errors.WrapVCS(err, errors.ErrCodeGitReset,
			"failed to create initial commit").WithPath(root)
	}

	return nil
}
