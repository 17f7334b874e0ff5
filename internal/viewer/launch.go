package viewer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"git.home.luguber.info/inful/texwatch/internal/config"
	"git.home.luguber.info/inful/texwatch/internal/logfields"
)

// Launch opens the viewer pointed at targetFile and returns as soon as the
// process is spawned. The child is released, never waited on; its lifetime is
// fully decoupled from the caller. targetFile is not required to exist yet -
// watch-capable viewers pick it up once the first build lands.
func Launch(c config.ViewerCandidate, targetFile string) error {
	cmd := launchCommand(c, targetFile)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch viewer %s: %w", c.Name, err)
	}
	if err := cmd.Process.Release(); err != nil {
		slog.Debug("Viewer process release failed", logfields.Viewer(c.Name), logfields.Error(err))
	}
	slog.Info("Viewer launched", logfields.Viewer(c.Name), logfields.Artifact(targetFile))
	return nil
}

// launchCommand builds the spawn invocation. macOS application bundles are
// not directly executable and go through open -a.
func launchCommand(c config.ViewerCandidate, targetFile string) *exec.Cmd {
	if runtime.GOOS == "darwin" && strings.HasSuffix(c.Path, ".app") {
		return exec.Command("open", "-a", c.Path, targetFile)
	}
	return exec.Command(c.Path, targetFile)
}

// WarnNoViewer emits the advisory shown when resolution finds nothing. The
// run continues; a missing viewer is never fatal.
func WarnNoViewer(hint string) {
	if hint == "" {
		hint = InstallHint(runtime.GOOS)
	}
	slog.Warn("No PDF viewer found; the artifact will not be opened automatically")
	fmt.Fprintln(os.Stderr, hint)
}
