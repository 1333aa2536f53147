package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyGeneratedProject(t *testing.T) {
	p := testProject(t, 6, 3, 2)
	require.NoError(t, NewGenerator(p).Run())

	report, err := Verify(p.Dir())
	require.NoError(t, err)
	assert.Equal(t, 6, report.SourceFiles)
	assert.Equal(t, 3, report.HeaderFiles)
	assert.Equal(t, 6, report.Entries)
}

func TestVerifyDetectsMissingSource(t *testing.T) {
	p := testProject(t, 4, 2, 2)
	require.NoError(t, NewGenerator(p).Run())

	require.NoError(t, os.Remove(filepath.Join(p.Dir(), "sources", "subdir_0", "file_1.cpp")))

	_, err := Verify(p.Dir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "entries")
}

func TestVerifyDetectsCorruptDatabase(t *testing.T) {
	p := testProject(t, 2, 1, 1)
	require.NoError(t, NewGenerator(p).Run())

	dbPath := filepath.Join(p.Dir(), CompileCommandsFilename)
	require.NoError(t, os.WriteFile(dbPath, []byte("not json"), 0o644))

	_, err := Verify(p.Dir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse compile database")
}

func TestVerifyMissingDatabase(t *testing.T) {
	p := testProject(t, 2, 1, 1)
	require.NoError(t, NewGenerator(p).Run())
	require.NoError(t, os.Remove(filepath.Join(p.Dir(), CompileCommandsFilename)))

	_, err := Verify(p.Dir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "open compile database")
}
