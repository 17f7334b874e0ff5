package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/texwatch/internal/config"
	"git.home.luguber.info/inful/texwatch/internal/orchestrator"
)

// CompileOnceCmd implements the 'compile-once' command: preflight the viewer,
// then run a single build pass.
type CompileOnceCmd struct{}

func (c *CompileOnceCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	orch := orchestrator.New(cfg)
	if store := openHistory(cfg); store != nil {
		defer func() { _ = store.Close() }()
		orch = orch.WithHistory(store)
	}

	code, err := orch.CompileOnce(sigctx)
	if err != nil {
		return err
	}
	return exitFromCode(code)
}
