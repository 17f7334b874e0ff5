// Package watcher implements the orchestrator-side watch loop: an fsnotify
// watch over the source root that re-runs one-shot builds on change. It is
// the fallback for environments where the build tool's own watch mode cannot
// see host file changes (container mount boundaries on Docker Desktop).
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/texwatch/internal/logfields"
)

// Options configures a watch run.
type Options struct {
	Root       string        // directory to watch recursively
	Debounce   time.Duration // quiet period before a rebuild fires
	IgnoreDirs []string      // subtrees excluded from watching (e.g. the output dir)
}

// Run watches opts.Root and invokes rebuild on debounced changes. Rebuilds
// are single-flight: a change arriving mid-build queues exactly one
// follow-up. Run blocks until ctx is cancelled; an initial rebuild fires
// immediately so the artifact exists before the first edit.
func Run(ctx context.Context, opts Options, rebuild func(context.Context)) error {
	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}
	if st, statErr := os.Stat(absRoot); statErr != nil || !st.IsDir() {
		return fmt.Errorf("watch root not found or not a directory: %s", absRoot)
	}

	ignored := make([]string, 0, len(opts.IgnoreDirs))
	for _, d := range opts.IgnoreDirs {
		if abs, err := filepath.Abs(d); err == nil {
			ignored = append(ignored, abs)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := addDirsRecursive(w, absRoot, ignored); err != nil {
		return err
	}

	rebuildReq, trigger := setupDebouncer(opts.Debounce)
	startRebuildWorker(ctx, rebuild, rebuildReq)

	// Initial build before the first change arrives.
	select {
	case rebuildReq <- struct{}{}:
	default:
	}

	slog.Info("Watching sources", logfields.Path(absRoot))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			handleFileEvent(w, ev, ignored, trigger)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", logfields.Error(err))
		}
	}
}

// setupDebouncer creates the rebuild channel and a trigger function that
// collapses bursts of events into one request after the quiet period.
func setupDebouncer(debounce time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}

	return rebuildReq, trigger
}

// startRebuildWorker processes rebuild requests one at a time.
func startRebuildWorker(ctx context.Context, rebuild func(context.Context), rebuildReq chan struct{}) {
	var mu sync.Mutex
	running := false
	pending := false

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-rebuildReq:
				if !ok {
					return
				}
				mu.Lock()
				if running {
					pending = true
					mu.Unlock()
					continue
				}
				running = true
				mu.Unlock()

				rebuild(ctx)

				mu.Lock()
				running = false
				if pending {
					pending = false
					mu.Unlock()
					select {
					case rebuildReq <- struct{}{}:
					default:
					}
				} else {
					mu.Unlock()
				}
			}
		}
	}()
}

// handleFileEvent filters noise and triggers the debounced rebuild. Newly
// created directories join the watch set.
func handleFileEvent(w *fsnotify.Watcher, ev fsnotify.Event, ignored []string, trigger func()) {
	if shouldIgnoreEvent(ev.Name) || underAny(ev.Name, ignored) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(w, ev.Name, ignored)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string, ignored []string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if underAny(path, ignored) || strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// underAny reports whether path is inside (or equal to) any of the roots.
func underAny(path string, roots []string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, r := range roots {
		if abs == r || strings.HasPrefix(abs, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Ignore hidden files
	if strings.HasPrefix(base, ".") {
		return true
	}

	// Ignore editor temp/swap files
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	// LaTeX intermediates that may leak outside the output dir
	switch filepath.Ext(base) {
	case ".aux", ".log", ".fls", ".fdb_latexmk", ".synctex", ".gz", ".out", ".toc", ".bbl", ".blg":
		return true
	}

	if base == ".DS_Store" || base == "Thumbs.db" {
		return true
	}

	return false
}
