// Package gitinfo captures the source revision a build ran against.
package gitinfo

import (
	git "github.com/go-git/go-git/v5"
)

// shortHashLen matches the abbreviation git itself defaults to.
const shortHashLen = 8

// HeadCommit returns the abbreviated HEAD hash of the repository containing
// dir, walking up to the enclosing work tree. A missing repository or
// unborn HEAD is a normal outcome, not an error; ok is false in that case.
func HeadCommit(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		return "", false
	}
	return head.Hash().String()[:shortHashLen], true
}
