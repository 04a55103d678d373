package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("should read the edit file first", func(t *testing.T) {
		// Arrange
		mockGit := new(MockGitService)
		path := filepath.Join(t.TempDir(), "MSG")
		require.NoError(t, os.WriteFile(path, []byte("✨ feat: add x\n"), 0644))
		service := NewMessageService(mockGit)

		// Act
		msg, err := service.Read(ctx, models.MessageRequest{
			EditFile:  path,
			CommitMsg: true,
			Args:      []string{"ignored"},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "✨ feat: add x\n", msg)
		mockGit.AssertNotCalled(t, "CommitMsgPath", mock.Anything)
	})

	t.Run("should read COMMIT_EDITMSG through git", func(t *testing.T) {
		// Arrange
		mockGit := new(MockGitService)
		path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
		require.NoError(t, os.WriteFile(path, []byte("🐛 fix: y"), 0644))
		mockGit.On("CommitMsgPath", mock.Anything).Return(path, nil)
		service := NewMessageService(mockGit)

		// Act
		msg, err := service.Read(ctx, models.MessageRequest{CommitMsg: true})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "🐛 fix: y", msg)
		mockGit.AssertExpectations(t)
	})

	t.Run("should return the git error outside a repository", func(t *testing.T) {
		// Arrange
		mockGit := new(MockGitService)
		mockGit.On("CommitMsgPath", mock.Anything).Return("", domainErrors.ErrNotInGitRepo)
		service := NewMessageService(mockGit)

		// Act
		_, err := service.Read(ctx, models.MessageRequest{CommitMsg: true})

		// Assert
		assert.ErrorIs(t, err, domainErrors.ErrNotInGitRepo)
	})

	t.Run("should join positional arguments", func(t *testing.T) {
		service := NewMessageService(new(MockGitService))

		msg, err := service.Read(ctx, models.MessageRequest{
			Args:  []string{"📝", "docs:", "update", "readme"},
			Stdin: strings.NewReader("ignored"),
		})

		require.NoError(t, err)
		assert.Equal(t, "📝 docs: update readme", msg)
	})

	t.Run("should read stdin when it is not a terminal", func(t *testing.T) {
		service := NewMessageService(new(MockGitService))

		msg, err := service.Read(ctx, models.MessageRequest{Stdin: strings.NewReader("🔧 chore: bump\n\nbody")})

		require.NoError(t, err)
		assert.Equal(t, "🔧 chore: bump\n\nbody", msg)
	})

	t.Run("should skip a terminal stdin", func(t *testing.T) {
		service := NewMessageService(new(MockGitService))

		_, err := service.Read(ctx, models.MessageRequest{
			Stdin:           strings.NewReader("never read"),
			StdinIsTerminal: true,
		})

		assert.ErrorIs(t, err, domainErrors.ErrEmptyMessage)
	})

	t.Run("should reject blank messages", func(t *testing.T) {
		service := NewMessageService(new(MockGitService))

		_, err := service.Read(ctx, models.MessageRequest{Args: []string{"  ", "\n"}})

		assert.ErrorIs(t, err, domainErrors.ErrEmptyMessage)
	})

	t.Run("should wrap missing files", func(t *testing.T) {
		service := NewMessageService(new(MockGitService))

		_, err := service.Read(ctx, models.MessageRequest{EditFile: filepath.Join(t.TempDir(), "missing")})

		assert.ErrorIs(t, err, domainErrors.ErrReadMessage)
	})
}
