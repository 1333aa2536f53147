package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// VerifyReport summarizes an integrity check of a generated project.
type VerifyReport struct {
	SourceFiles int
	HeaderFiles int
	Entries     int
}

// Verify cross-checks a generated project directory against its compile
// database: the entry count must equal the number of source files on
// disk, every "file" value must be unique, and every referenced source
// must exist.
func Verify(dir string) (*VerifyReport, error) {
	fsys := os.DirFS(dir)

	sources, err := doublestar.Glob(fsys, "sources/**/*.cpp", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob sources: %w", err)
	}
	headers, err := doublestar.Glob(fsys, "includes/**/*.h", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob headers: %w", err)
	}

	f, err := os.Open(filepath.Join(dir, CompileCommandsFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to open compile database: %w", err)
	}
	defer f.Close()

	var entries []CompileCommand
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse compile database: %w", err)
	}

	if len(entries) != len(sources) {
		return nil, fmt.Errorf("compile database has %d entries but %d source files exist", len(entries), len(sources))
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.File] {
			return nil, fmt.Errorf("duplicate compile database entry for %s", entry.File)
		}
		seen[entry.File] = true
	}

	// stat the referenced sources in parallel
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		eg.Go(func() error {
			path := filepath.Join(dir, filepath.FromSlash(entry.File))
			if info, err := os.Stat(path); err != nil || info.IsDir() {
				return fmt.Errorf("compile database references missing source %s", entry.File)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &VerifyReport{
		SourceFiles: len(sources),
		HeaderFiles: len(headers),
		Entries:     len(entries),
	}, nil
}
