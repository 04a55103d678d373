package ports

import "context"

// GitService is the repository access the commands need.
type GitService interface {
	RepoRoot(ctx context.Context) (string, error)
	GitDir(ctx context.Context) (string, error)
	CommitMsgPath(ctx context.Context) (string, error)
	IsRepo(ctx context.Context) bool
}
