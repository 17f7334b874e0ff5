package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/texwatch/cmd/texwatch/commands"
	"git.home.luguber.info/inful/texwatch/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("texwatch"),
		kong.Description("Watch-and-preview orchestrator for containerized LaTeX builds."),
		kong.Vars{"version": fmt.Sprintf("texwatch %s (built %s, commit %s)", version.Version, version.BuildTime, version.GitCommit)},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	if err == nil {
		return
	}

	// Propagate the build tool's own exit status; everything else is a
	// texwatch error.
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "texwatch:", err)
	os.Exit(1)
}
