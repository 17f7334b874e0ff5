package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyMode       = "mode"
	KeyPath       = "path"
	KeyArtifact   = "artifact"
	KeyViewer     = "viewer"
	KeyImage      = "image"
	KeyRuntime    = "runtime"
	KeyExitCode   = "exit_code"
	KeyDurationMS = "duration_ms"
	KeyCommit     = "commit"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Artifact(p string) slog.Attr     { return slog.String(KeyArtifact, p) }
func Viewer(name string) slog.Attr    { return slog.String(KeyViewer, name) }
func Image(img string) slog.Attr      { return slog.String(KeyImage, img) }
func Runtime(rt string) slog.Attr     { return slog.String(KeyRuntime, rt) }
func ExitCode(code int) slog.Attr     { return slog.Int(KeyExitCode, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Commit(hash string) slog.Attr    { return slog.String(KeyCommit, hash) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
