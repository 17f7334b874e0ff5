// Package runner spawns build-tool invocations and propagates their exit
// status. The child's stdout/stderr pass through verbatim; no diagnostics
// translation happens here.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"git.home.luguber.info/inful/texwatch/internal/latex"
)

// Runner executes invocations with the given stdio wiring. The zero writers
// default to the parent's streams.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// New returns a Runner wired to the parent process stdio.
func New() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

// Run spawns the invocation and blocks until the child exits. Exactly one
// child is active per call. A non-zero child exit is a propagated status,
// not an error; err is non-nil only when the child could not be spawned.
// Context cancellation (operator interrupt) terminates the child and reports
// a clean zero status.
func (r *Runner) Run(ctx context.Context, inv latex.Invocation) (int, error) {
	if len(inv.Argv) == 0 {
		return -1, errors.New("empty invocation")
	}

	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal delivered directly to the child
			// (e.g. Ctrl-C reaching the process group).
			return 0, nil
		}
		return code, nil
	}

	return -1, fmt.Errorf("failed to spawn build tool: %w", err)
}
