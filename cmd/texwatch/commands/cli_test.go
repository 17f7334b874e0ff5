package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/texwatch/internal/config"
)

func TestGrammar(t *testing.T) {
	parser, err := kong.New(&CLI{}, kong.Vars{"version": "test"})
	require.NoError(t, err)

	// watch and compile-once are distinct subcommands: mode exclusivity is
	// enforced at the parsing boundary, one mode per invocation.
	ctx, err := parser.Parse([]string{"watch"})
	require.NoError(t, err)
	assert.Equal(t, "watch", ctx.Command())

	ctx, err = parser.Parse([]string{"compile-once"})
	require.NoError(t, err)
	assert.Equal(t, "compile-once", ctx.Command())

	// No arguments falls through to the default watch command.
	ctx, err = parser.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, "watch", ctx.Command())
}

func TestExitFromCode(t *testing.T) {
	require.NoError(t, exitFromCode(0))

	err := exitFromCode(3)
	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}

func TestInitCmd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "texwatch.yaml")
	cli := &CLI{Config: configPath}

	cmd := &InitCmd{}
	require.NoError(t, cmd.Run(&Global{}, cli))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "thesis.tex", cfg.Build.EntryFile)

	// Without force, the second init is refused.
	require.Error(t, cmd.Run(&Global{}, cli))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, cli))
}

func TestHistoryCmd_EmptyStore(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "texwatch.yaml")
	content := "build:\n  entry_file: thesis.tex\nhistory:\n  path: " + filepath.Join(dir, "history.db") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cmd := &HistoryCmd{Limit: 10}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: configPath}))
}

func TestHistoryCmd_Disabled(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "texwatch.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("history:\n  disabled: true\n"), 0o644))

	err := (&HistoryCmd{Limit: 10}).Run(&Global{}, &CLI{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}
