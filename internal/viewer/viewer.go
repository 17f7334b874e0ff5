// Package viewer resolves and launches a PDF viewer for the generated
// artifact. Resolution walks an ordered candidate list and picks the first
// install location that exists; absence of any viewer is a normal outcome,
// not an error.
package viewer

import (
	"os"

	"git.home.luguber.info/inful/texwatch/internal/config"
)

// Resolve returns the first candidate whose install path exists on the
// filesystem, in list order. The check is a plain stat; no validation that
// the path is executable. ok is false when no candidate exists.
func Resolve(candidates []config.ViewerCandidate) (config.ViewerCandidate, bool) {
	for _, c := range candidates {
		if _, err := os.Stat(c.Path); err == nil {
			return c, true
		}
	}
	return config.ViewerCandidate{}, false
}
