package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/texwatch/internal/config"
)

func TestResolve_PicksFirstExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "viewer.exe")
	if err := os.WriteFile(existing, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	candidates := []config.ViewerCandidate{
		{Name: "missing-preferred", Path: filepath.Join(dir, "does-not-exist.exe")},
		{Name: "installed", Path: existing},
		{Name: "installed-later", Path: existing},
	}

	got, ok := Resolve(candidates)
	if !ok {
		t.Fatal("Resolve() found nothing, want the installed candidate")
	}
	if got.Name != "installed" {
		t.Errorf("Resolve() picked %q, want %q (priority order must be respected)", got.Name, "installed")
	}
}

func TestResolve_OrderWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	for _, p := range []string{first, second} {
		if err := os.WriteFile(p, []byte("stub"), 0o755); err != nil {
			t.Fatalf("write stub: %v", err)
		}
	}

	got, ok := Resolve([]config.ViewerCandidate{
		{Name: "a", Path: first},
		{Name: "b", Path: second},
	})
	if !ok || got.Name != "a" {
		t.Errorf("Resolve() = %q, %v; want first existing candidate %q", got.Name, ok, "a")
	}
}

func TestResolve_NoneFoundIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	_, ok := Resolve([]config.ViewerCandidate{
		{Name: "gone", Path: filepath.Join(dir, "nope")},
	})
	if ok {
		t.Error("Resolve() reported a viewer for a non-existing path")
	}
}

func TestResolve_EmptyList(t *testing.T) {
	if _, ok := Resolve(nil); ok {
		t.Error("Resolve(nil) must report absence")
	}
	if _, ok := Resolve([]config.ViewerCandidate{}); ok {
		t.Error("Resolve(empty) must report absence")
	}
}

func TestDefaultCandidates(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux"} {
		if len(DefaultCandidates(goos)) == 0 {
			t.Errorf("DefaultCandidates(%q) is empty", goos)
		}
		if InstallHint(goos) == "" {
			t.Errorf("InstallHint(%q) is empty", goos)
		}
	}

	// The windows ordering is load-bearing: Sumatra variants come before Acrobat.
	win := DefaultCandidates("windows")
	if win[0].Name != "SumatraPDF (64-bit)" || win[1].Name != "SumatraPDF (32-bit)" {
		t.Errorf("unexpected windows priority order: %q, %q", win[0].Name, win[1].Name)
	}
}
