// Package git provides repository discovery and exclude-file management
// using go-git v6.
package git

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
)

// ErrNotRepository is returned when no git repository can be found.
var ErrNotRepository = errors.New("not in a git repository")

// Repository defines the interface for git repository operations
type Repository interface {
	// IsInRepo checks if we're in a git repository
	IsInRepo() bool

	// GetRoot returns the git repository root directory
	GetRoot() (string, error)
}

// SDKRepository implements Repository using go-git SDK
type SDKRepository struct {
	repo *git.Repository
}

var (
	repoInstance *SDKRepository
	repoOnce     sync.Once
	errRepo      error
)

// ResetRepositoryCache resets the repository cache (for testing only)
func ResetRepositoryCache() {
	repoInstance = nil
	repoOnce = sync.Once{}
	errRepo = nil
}

// DiscoverRepository discovers and caches the git repository from the current directory
func DiscoverRepository() (*SDKRepository, error) {
	repoOnce.Do(func() {
		repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{
			DetectDotGit: true,
		})
		if err != nil {
			if errors.Is(err, git.ErrRepositoryNotExists) {
				errRepo = ErrNotRepository
				return
			}

			errRepo = errors.Wrap(err, "failed to open repository")

			return
		}

		repoInstance = &SDKRepository{repo: repo}
	})

	return repoInstance, errRepo
}

// OpenRepository opens a git repository from a specific path (not cached).
//
// Linked worktrees have a .git file (not directory) pointing to the main
// repository's .git/worktrees/<name> directory. go-git v6 always follows
// the commondir reference to find the actual repository configuration.
// See: https://github.com/go-git/go-git/issues/225
func OpenRepository(path string) (*SDKRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}

		return nil, errors.Wrap(err, "failed to open repository")
	}

	return &SDKRepository{repo: repo}, nil
}

// IsInRepo checks if we're in a git repository
func (r *SDKRepository) IsInRepo() bool {
	return r.repo != nil
}

// GetRoot returns the git repository root directory
func (r *SDKRepository) GetRoot() (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get worktree")
	}

	return worktree.Filesystem.Root(), nil
}
