package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindling-dev/kindling/internal/errors"
)

func seedProject(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "project.yml"), []byte("name: my-api\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# my-api\n"), 0644))
}

func headCommit(t *testing.T, root string) (message string, author string) {
	t.Helper()
	repo, err := git.PlainOpen(root)
	require.NoError(t, err)

	ref, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(ref.Hash())
	require.NoError(t, err)

	return commit.Message, commit.Author.Name
}

func TestResetVersionControl(t *testing.T) {
	root := t.TempDir()
	seedProject(t, root)

	require.NoError(t, ResetVersionControl(root, "Jane"))

	assert.DirExists(t, filepath.Join(root, git.GitDirName))

	message, author := headCommit(t, root)
	assert.Equal(t, CommitMessage, strings.TrimSpace(message))
	assert.Equal(t, "Jane", author)
}

func TestResetVersionControl_DiscardsExistingHistory(t *testing.T) {
	root := t.TempDir()
	seedProject(t, root)

	// template history that must disappear
	require.NoError(t, ResetVersionControl(root, "Template Author"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "extra.txt"), []byte("x\n"), 0644))

	require.NoError(t, ResetVersionControl(root, "Jane"))

	repo, err := git.PlainOpen(root)
	require.NoError(t, err)

	ref, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(ref.Hash())
	require.NoError(t, err)
	assert.Empty(t, commit.ParentHashes, "fresh history must have a single root commit")
	assert.Equal(t, "Jane", commit.Author.Name)
}

func TestResetVersionControl_DefaultAuthor(t *testing.T) {
	root := t.TempDir()
	seedProject(t, root)

	require.NoError(t, ResetVersionControl(root, ""))

	_, author := headCommit(t, root)
	assert.Equal(t, fallbackAuthorName, author)
}

func TestResetVersionControl_FailureIsRecoverable(t *testing.T) {
	root := t.TempDir()
	// a root that is a regular file: .git cannot be created beneath it
	obstruction := filepath.Join(root, "not-a-dir")
	require.NoError(t, os.WriteFile(obstruction, []byte("x"), 0644))

	err := ResetVersionControl(obstruction, "Jane")
	require.Error(t, err)
	assert.True(t, errors.IsVCSError(err))
	assert.True(t, errors.IsRecoverable(err), "VCS failures must stay downgradeable to warnings")
}
