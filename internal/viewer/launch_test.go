package viewer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/texwatch/internal/config"
)

// writeStubViewer creates an executable script that sleeps, standing in for
// a real viewer process.
func writeStubViewer(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "slow-viewer.sh")
	script := "#!/bin/sh\nsleep 5\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestLaunch_DoesNotBlockOnViewer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub viewer script requires a POSIX shell")
	}

	dir := t.TempDir()
	c := config.ViewerCandidate{Name: "slow", Path: writeStubViewer(t, dir)}

	start := time.Now()
	err := Launch(c, filepath.Join(dir, "not-yet-built.pdf"))
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Less(t, elapsed, 100*time.Millisecond,
		"Launch must return as soon as the viewer is spawned, not wait for it")
}

func TestLaunch_TargetNeedNotExist(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub viewer script requires a POSIX shell")
	}

	dir := t.TempDir()
	c := config.ViewerCandidate{Name: "stub", Path: writeStubViewer(t, dir)}

	// The artifact path points nowhere; Launch must not care.
	require.NoError(t, Launch(c, filepath.Join(dir, "missing", "thesis.pdf")))
}

func TestLaunch_SpawnFailure(t *testing.T) {
	dir := t.TempDir()
	c := config.ViewerCandidate{Name: "broken", Path: filepath.Join(dir, "no-such-binary")}

	err := Launch(c, "whatever.pdf")
	require.Error(t, err, "spawning a non-existing viewer must surface an error for the caller to downgrade")
}
