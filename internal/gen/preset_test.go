package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePresetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[project]
name = "Stress"
compiler = "/usr/bin/clang++"
sources = 1200
headers = 300
subdirs = 10
output = "/tmp/bench"
`), 0o644))

	preset, err := ParsePresetFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Stress", preset.Project.Name)
	assert.Equal(t, "/usr/bin/clang++", preset.Project.Compiler)
	assert.Equal(t, 1200, preset.Project.Sources)
	assert.Equal(t, 300, preset.Project.Headers)
	assert.Equal(t, 10, preset.Project.Subdirs)
	assert.Equal(t, "/tmp/bench", preset.Project.Output)
}

func TestParsePresetInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project\nname="), 0o644))

	_, err := ParsePresetFromFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse preset")
}

func TestParsePresetMissingFile(t *testing.T) {
	_, err := ParsePresetFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
