// Package orchestrator drives the build pipeline: a non-blocking preflight
// (viewer resolution and launch) followed by exactly one blocking build-tool
// child per invocation. Build failures propagate the child's exit status
// verbatim; preflight failures are never fatal.
package orchestrator

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/texwatch/internal/config"
	"git.home.luguber.info/inful/texwatch/internal/gitinfo"
	"git.home.luguber.info/inful/texwatch/internal/history"
	"git.home.luguber.info/inful/texwatch/internal/latex"
	"git.home.luguber.info/inful/texwatch/internal/logfields"
	"git.home.luguber.info/inful/texwatch/internal/runner"
	"git.home.luguber.info/inful/texwatch/internal/viewer"
	"git.home.luguber.info/inful/texwatch/internal/watcher"
)

// Runner abstracts process execution (injected in tests).
type Runner interface {
	Run(ctx context.Context, inv latex.Invocation) (int, error)
}

// Orchestrator owns one build-tool child at a time. The viewer child, once
// launched, is untracked and fully decoupled.
type Orchestrator struct {
	cfg    *config.Config
	runner Runner
	store  *history.Store // nil when history is disabled
	goos   string
}

// New creates an orchestrator for the given configuration.
func New(cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		runner: runner.New(),
		goos:   runtime.GOOS,
	}
}

// WithRunner injects a custom process runner (for testing).
func (o *Orchestrator) WithRunner(r Runner) *Orchestrator {
	o.runner = r
	return o
}

// WithHistory injects the build-run record. Recording stays advisory.
func (o *Orchestrator) WithHistory(s *history.Store) *Orchestrator {
	o.store = s
	return o
}

// WithPlatform overrides the platform used for viewer defaults (for testing).
func (o *Orchestrator) WithPlatform(goos string) *Orchestrator {
	o.goos = goos
	return o
}

// Watch runs preflight and then blocks in watch mode until the child exits
// or the operator interrupts. The returned code is the process exit status
// to propagate; err is non-nil only when the build tool could not be
// spawned at all.
func (o *Orchestrator) Watch(ctx context.Context) (int, error) {
	o.preflight()

	if o.cfg.Watch.Strategy == config.WatchStrategyOrchestrator {
		return o.watchSources(ctx)
	}

	inv, err := latex.BuildInvocation(o.cfg, latex.ModeWatch)
	if err != nil {
		return -1, err
	}

	slog.Info("Starting build tool in watch mode",
		logfields.Runtime(string(o.cfg.Environment.Runtime)),
		logfields.Image(o.cfg.Environment.Image),
		logfields.Artifact(o.cfg.Build.ArtifactPath()))

	return o.runRecorded(ctx, inv, latex.ModeWatch)
}

// CompileOnce runs preflight and a single build pass.
func (o *Orchestrator) CompileOnce(ctx context.Context) (int, error) {
	o.preflight()

	inv, err := latex.BuildInvocation(o.cfg, latex.ModeOnce)
	if err != nil {
		return -1, err
	}

	slog.Info("Starting one-shot build",
		logfields.Runtime(string(o.cfg.Environment.Runtime)),
		logfields.Artifact(o.cfg.Build.ArtifactPath()))

	return o.runRecorded(ctx, inv, latex.ModeOnce)
}

// preflight resolves and launches the viewer pointed at the expected
// artifact path. It never blocks on the viewer and never aborts the run;
// every failure here is downgraded to a warning.
func (o *Orchestrator) preflight() {
	candidates := o.cfg.Viewer.Candidates
	if len(candidates) == 0 {
		candidates = viewer.DefaultCandidates(o.goos)
	}

	c, ok := viewer.Resolve(candidates)
	if !ok {
		viewer.WarnNoViewer(o.cfg.Viewer.InstallHint)
		return
	}

	// The artifact may not exist yet; watch-capable viewers tolerate that
	// and reload once the first build lands.
	if err := viewer.Launch(c, o.cfg.Build.ArtifactPath()); err != nil {
		slog.Warn("Viewer launch failed", logfields.Viewer(c.Name), logfields.Error(err))
	}
}

// watchSources runs the orchestrator-side watch loop: fsnotify over the
// source root, re-running one-shot builds on change. Per-build failures are
// reported by the build tool itself and do not stop the loop.
func (o *Orchestrator) watchSources(ctx context.Context) (int, error) {
	inv, err := latex.BuildInvocation(o.cfg, latex.ModeOnce)
	if err != nil {
		return -1, err
	}

	opts := watcher.Options{
		Root:       o.cfg.Build.SourceRoot,
		Debounce:   time.Duration(o.cfg.Watch.DebounceMS) * time.Millisecond,
		IgnoreDirs: []string{o.cfg.Build.ArtifactDir()},
	}

	rebuild := func(ctx context.Context) {
		code, err := o.runRecorded(ctx, inv, latex.ModeWatch)
		if err != nil {
			slog.Error("Build failed to start", logfields.Error(err))
			return
		}
		if code != 0 {
			slog.Warn("Build finished with errors", logfields.ExitCode(code))
		}
	}

	if err := watcher.Run(ctx, opts, rebuild); err != nil {
		return -1, err
	}
	return 0, nil
}

// runRecorded executes the invocation and appends the outcome to the run
// history. History failures are advisory only.
func (o *Orchestrator) runRecorded(ctx context.Context, inv latex.Invocation, mode latex.Mode) (int, error) {
	started := time.Now()
	code, err := o.runner.Run(ctx, inv)
	if err != nil {
		return code, err
	}

	if o.store != nil {
		run := history.Run{
			ID:        uuid.NewString(),
			Mode:      string(mode),
			Argv:      inv.Argv,
			StartedAt: started,
			Duration:  time.Since(started),
			ExitCode:  code,
			Artifact:  o.cfg.Build.ArtifactPath(),
		}
		if commit, ok := gitinfo.HeadCommit(o.cfg.Build.SourceRoot); ok {
			run.Commit = commit
		}
		// The run context may already be cancelled after an interrupt.
		if err := o.store.Record(context.WithoutCancel(ctx), run); err != nil {
			slog.Warn("Failed to record build run", logfields.RunID(run.ID), logfields.Error(err))
		}
	}

	return code, nil
}
