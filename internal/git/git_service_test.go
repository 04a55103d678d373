package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Error initializing git repository: %v: %s", err, out)
	}

	// macOS temp dirs are symlinks, git reports the resolved path
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestGitService(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the repository root from a subdirectory", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		sub := filepath.Join(repo, "internal", "pkg")
		require.NoError(t, os.MkdirAll(sub, 0755))
		service := NewGitServiceAt(sub)

		// Act
		root, err := service.RepoRoot(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, repo, root)
	})

	t.Run("should return the absolute git directory", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitServiceAt(repo)

		// Act
		dir, err := service.GitDir(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(repo, ".git"), dir)
	})

	t.Run("should point at COMMIT_EDITMSG", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitServiceAt(repo)

		// Act
		path, err := service.CommitMsgPath(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(repo, ".git", "COMMIT_EDITMSG"), path)
		assert.True(t, service.IsRepo(ctx))
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		// Arrange
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		dir := t.TempDir()
		t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
		service := NewGitServiceAt(dir)

		// Act
		_, rootErr := service.RepoRoot(ctx)
		_, dirErr := service.CommitMsgPath(ctx)

		// Assert
		assert.ErrorIs(t, rootErr, domainErrors.ErrNotInGitRepo)
		assert.ErrorIs(t, dirErr, domainErrors.ErrNotInGitRepo)
		assert.False(t, service.IsRepo(ctx))
	})
}
