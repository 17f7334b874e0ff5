package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/texwatch/internal/config"
	"git.home.luguber.info/inful/texwatch/internal/history"
	"git.home.luguber.info/inful/texwatch/internal/logfields"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"texwatch.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Watch       WatchCmd       `cmd:"" default:"withargs" help:"Rebuild on source change and preview the artifact (default)"`
	CompileOnce CompileOnceCmd `cmd:"" name:"compile-once" help:"Run a single build pass and preview the artifact"`
	Init        InitCmd        `cmd:"" help:"Initialize a new configuration file"`
	History     HistoryCmd     `cmd:"" help:"Show recent build runs"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ExitError carries a child process exit status to main without wrapping the
// build tool's own diagnostics in another message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("build tool exited with status %d", e.Code)
}

// exitFromCode converts a propagated child status into the command result.
func exitFromCode(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// openHistory opens the configured run record, or returns nil when disabled.
// History is advisory; open failures log a warning and the build proceeds.
func openHistory(cfg *config.Config) *history.Store {
	if cfg.History.Disabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("Build history unavailable", logfields.Path(cfg.History.Path), logfields.Error(err))
		return nil
	}
	return store
}
