package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Mode", KeyMode, "watch", Mode("watch")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Artifact", KeyArtifact, "build/thesis.pdf", Artifact("build/thesis.pdf")},
		{"Viewer", KeyViewer, "SumatraPDF", Viewer("SumatraPDF")},
		{"Image", KeyImage, "texlive/texlive", Image("texlive/texlive")},
		{"Runtime", KeyRuntime, "docker", Runtime("docker")},
		{"Commit", KeyCommit, "deadbeef", Commit("deadbeef")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestErrorAttr(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Errorf("Error(nil) = %q, want empty", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Errorf("Error() = %q, want boom", got)
	}
}

func TestExitCodeAndDuration(t *testing.T) {
	if ExitCode(3).Value.Int64() != 3 {
		t.Error("ExitCode value mismatch")
	}
	if DurationMS(12.5).Value.Float64() != 12.5 {
		t.Error("DurationMS value mismatch")
	}
}
