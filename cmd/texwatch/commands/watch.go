package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/texwatch/internal/config"
	"git.home.luguber.info/inful/texwatch/internal/orchestrator"
)

// WatchCmd implements the 'watch' command: preflight the viewer, then hand
// off to the build tool's watch loop until interrupted.
type WatchCmd struct{}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Interrupts propagate to the child process; the orchestrator reports a
	// clean status after cancellation.
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	orch := orchestrator.New(cfg)
	if store := openHistory(cfg); store != nil {
		defer func() { _ = store.Close() }()
		orch = orch.WithHistory(store)
	}

	code, err := orch.Watch(sigctx)
	if err != nil {
		return err
	}
	return exitFromCode(code)
}
