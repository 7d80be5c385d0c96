package pkgcheck

import (
	"github.com/go-git/go-git/v5"
)

// ProjectRoot returns the worktree root of the git repository containing
// dir, or "" when dir is not inside one.
func ProjectRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "" // bare repository
	}
	return wt.Filesystem.Root()
}
