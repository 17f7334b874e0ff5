package config

import (
	"path/filepath"
	"strings"
)

// Config is the complete texwatch configuration. It is always passed
// explicitly; there is no package-level config state.
type Config struct {
	Build       BuildConfig       `yaml:"build"`
	Environment EnvironmentConfig `yaml:"environment,omitempty"`
	Watch       WatchConfig       `yaml:"watch,omitempty"`
	Viewer      ViewerConfig      `yaml:"viewer,omitempty"`
	History     HistoryConfig     `yaml:"history,omitempty"`
}

// BuildConfig describes the document build target.
type BuildConfig struct {
	SourceRoot  string   `yaml:"source_root"`            // directory containing the document entry file
	EntryFile   string   `yaml:"entry_file"`             // e.g. thesis.tex
	OutputDir   string   `yaml:"output_dir"`             // relative to source_root; created by the build tool
	ArtifactExt string   `yaml:"artifact_ext,omitempty"` // defaults to pdf
	Interaction string   `yaml:"interaction,omitempty"`  // latexmk -interaction policy
	ExtraArgs   []string `yaml:"extra_args,omitempty"`   // passed through to latexmk verbatim
}

// ArtifactPath returns the deterministic output artifact location:
// <source_root>/<output_dir>/<entry file base name>.<artifact_ext>.
func (b BuildConfig) ArtifactPath() string {
	base := strings.TrimSuffix(b.EntryFile, filepath.Ext(b.EntryFile))
	return filepath.Join(b.SourceRoot, b.OutputDir, base+"."+b.ArtifactExt)
}

// ArtifactDir returns the directory artifacts land in. The build tool
// creates it when absent; it is expected to be git-ignored.
func (b BuildConfig) ArtifactDir() string {
	return filepath.Join(b.SourceRoot, b.OutputDir)
}

// RuntimeType enumerates supported execution environments (stringly for YAML compatibility).
type RuntimeType string

const (
	RuntimeDocker RuntimeType = "docker"
	RuntimePodman RuntimeType = "podman"
	RuntimeNone   RuntimeType = "none" // run the build tool directly on the host
)

// EnvironmentConfig describes the isolated execution environment the build
// command runs in. The orchestrator talks to it only via process invocation
// and the mounted working directory.
type EnvironmentConfig struct {
	Runtime RuntimeType `yaml:"runtime,omitempty"`
	Image   string      `yaml:"image,omitempty"`
	Args    []string    `yaml:"args,omitempty"` // extra args for the runtime, e.g. --platform
}

// WatchStrategy selects who owns the rebuild loop.
type WatchStrategy string

const (
	// WatchStrategyTool delegates to the build tool's own watch mode (latexmk -pvc).
	WatchStrategyTool WatchStrategy = "tool"
	// WatchStrategyOrchestrator watches sources with fsnotify and re-runs
	// one-shot builds. Needed where file notification does not cross the
	// container mount boundary (Docker Desktop on mac/windows).
	WatchStrategyOrchestrator WatchStrategy = "orchestrator"
)

// WatchConfig tunes watch-mode behaviour.
type WatchConfig struct {
	Strategy   WatchStrategy `yaml:"strategy,omitempty"`
	DebounceMS int           `yaml:"debounce_ms,omitempty"`
}

// ViewerCandidate is one entry of the ordered viewer priority list.
type ViewerCandidate struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// ViewerConfig holds the ordered viewer candidate list. An empty list falls
// back to the platform defaults.
type ViewerConfig struct {
	Candidates []ViewerCandidate `yaml:"candidates,omitempty"`
	// InstallHint is shown when no candidate resolves.
	InstallHint string `yaml:"install_hint,omitempty"`
}

// HistoryConfig controls the local build-run record.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Path     string `yaml:"path,omitempty"` // sqlite database path
}
