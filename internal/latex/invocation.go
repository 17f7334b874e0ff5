// Package latex composes the build-tool invocation for a configured target.
// The toolchain itself (latexmk plus the TeX engine) is an opaque
// collaborator; this package only assembles its argv and the container
// wrapping around it.
package latex

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/texwatch/internal/config"
)

// Mode selects between the tool's continuous watch loop and a single pass.
type Mode string

const (
	ModeWatch Mode = "watch"
	ModeOnce  Mode = "once"
)

// containerWorkdir is where the source root is mounted inside the image.
const containerWorkdir = "/workdir"

// Invocation is a fully resolved build-tool command: argv plus the working
// directory it must be spawned in.
type Invocation struct {
	Argv []string
	Dir  string
}

// BuildInvocation assembles the latexmk command for the given mode, wrapped
// in the configured container runtime unless runtime is "none".
func BuildInvocation(cfg *config.Config, mode Mode) (Invocation, error) {
	tool := toolArgs(&cfg.Build, mode)

	if cfg.Environment.Runtime == config.RuntimeNone {
		return Invocation{Argv: tool, Dir: cfg.Build.SourceRoot}, nil
	}

	absRoot, err := filepath.Abs(cfg.Build.SourceRoot)
	if err != nil {
		return Invocation{}, fmt.Errorf("resolve source root: %w", err)
	}

	argv := []string{
		string(cfg.Environment.Runtime), "run", "--rm", "-i",
		"-v", absRoot + ":" + containerWorkdir,
		"-w", containerWorkdir,
	}
	argv = append(argv, cfg.Environment.Args...)
	argv = append(argv, cfg.Environment.Image)
	argv = append(argv, tool...)

	return Invocation{Argv: argv, Dir: absRoot}, nil
}

// toolArgs builds the bare latexmk argv. The tool's native previewer is
// always disabled (-view=none); texwatch supplies its own viewer integration.
func toolArgs(b *config.BuildConfig, mode Mode) []string {
	args := []string{
		"latexmk",
		"-pdf",
		"-interaction=" + b.Interaction,
		"-outdir=" + b.OutputDir,
	}
	if mode == ModeWatch {
		args = append(args, "-pvc", "-view=none")
	}
	args = append(args, b.ExtraArgs...)
	args = append(args, b.EntryFile)
	return args
}
