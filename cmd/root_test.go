package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand registers the generate flags on a throwaway command,
// resetting the shared flag variables to their defaults.
func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addGenerateFlags(cmd)
	return cmd
}

func TestResolveProjectDefaults(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("compiler", "/usr/bin/cc"))

	p, err := resolveProject(cmd)
	require.NoError(t, err)
	assert.Equal(t, 50000, p.Sources)
	assert.Equal(t, 10000, p.Headers)
	assert.Equal(t, 250, p.Subdirs)
	assert.Equal(t, "BigProject_50000_10000", p.Name)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, p.OutputRoot)
}

func TestResolveProjectRequiresCompiler(t *testing.T) {
	cmd := newTestCommand()

	_, err := resolveProject(cmd)
	require.Error(t, err)
	assert.ErrorContains(t, err, "compiler")
}

func TestResolveProjectPresetPrecedence(t *testing.T) {
	preset := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(preset, []byte(`[project]
name = "FromPreset"
compiler = "/usr/bin/cc"
sources = 12
headers = 3
`), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("config", preset))
	require.NoError(t, cmd.Flags().Set("sources", "7"))

	p, err := resolveProject(cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Sources, "explicit flag wins over preset")
	assert.Equal(t, 3, p.Headers, "preset fills unset flags")
	assert.Equal(t, "/usr/bin/cc", p.Compiler)
	assert.Equal(t, "FromPreset", p.Name)
	assert.Equal(t, 250, p.Subdirs, "flag default survives when preset is silent")
}
