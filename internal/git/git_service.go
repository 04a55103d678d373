package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/logger"
)

// CommitMsgFile is the file git leaves the message of the commit being
// edited in, relative to the git directory.
const CommitMsgFile = "COMMIT_EDITMSG"

type GitService struct {
	dir string
}

// NewGitService runs git in the current working directory.
func NewGitService() *GitService {
	return &GitService{}
}

// NewGitServiceAt runs git in dir.
func NewGitServiceAt(dir string) *GitService {
	return &GitService{dir: dir}
}

// RepoRoot returns the absolute path of the working tree root.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	out, err := s.revParse(ctx, "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.Clean(out), nil
}

// GitDir returns the absolute path of the .git directory, which differs
// from RepoRoot/.git in worktrees and submodules.
func (s *GitService) GitDir(ctx context.Context) (string, error) {
	out, err := s.revParse(ctx, "--absolute-git-dir")
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotInGitRepo) {
			return "", err
		}
		return "", domainErrors.ErrGetGitDir.WithError(err)
	}
	return filepath.Clean(out), nil
}

// CommitMsgPath returns the path of COMMIT_EDITMSG for the current repository.
func (s *GitService) CommitMsgPath(ctx context.Context) (string, error) {
	dir, err := s.GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CommitMsgFile), nil
}

// IsRepo reports whether the service directory is inside a git work tree.
func (s *GitService) IsRepo(ctx context.Context) bool {
	out, err := s.revParse(ctx, "--is-inside-work-tree")
	return err == nil && out == "true"
}

func (s *GitService) revParse(ctx context.Context, arg string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", arg)
	cmd.Dir = s.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		logger.Debug(ctx, "git rev-parse failed", "arg", arg, "stderr", msg)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && strings.Contains(msg, "not a git repository") {
			return "", domainErrors.ErrNotInGitRepo.WithError(err).WithContext("stderr", msg)
		}
		return "", domainErrors.ErrGetGitDir.WithError(err).WithContext("stderr", msg)
	}
	return strings.TrimSpace(string(output)), nil
}
