// Package gitroot locates the repository root that anchors pad paths.
package gitroot

import (
	git "github.com/go-git/go-git/v5"
)

// Find returns the root of the git repository containing dir, walking up
// parent directories like git itself does. When dir is not inside a
// repository (or the repository is bare) dir is returned unchanged, so the
// pad still works in plain directories.
func Find(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return dir
	}
	wt, err := repo.Worktree()
	if err != nil {
		return dir
	}
	return wt.Filesystem.Root()
}
