package builder

import (
	"errors"

	"github.com/go-git/go-git/v5"
)

// DirtyWorktreeSHAValue stands in for the configuration revision when
// the worktree has un-committed changes and --allow-dirty is set.
const DirtyWorktreeSHAValue = "DEVELOPMENT"

// ConfigGitSHA resolves the HEAD revision of the repository holding the
// model configuration. The configuration usually lives in a
// subdirectory, so the .git directory is searched for upward from the
// given path. Without allowDirty an unclean worktree is an error, so a
// card never records a revision the config does not match.
func ConfigGitSHA(repositoryDirectory string, allowDirty bool) (string, error) {
	repo, err := git.PlainOpenWithOptions(repositoryDirectory, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	status, err := wt.Status()
	if err != nil {
		return "", err
	}

	if !status.IsClean() {
		if !allowDirty {
			return "", errors.New("worktree is not clean")
		}
		return DirtyWorktreeSHAValue, nil
	}

	head, err := repo.Head()
	if err != nil {
		return "", err
	}

	return head.Hash().String(), nil
}
