package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// sourceTemplate builds the body of source file i. Every source includes
// exactly one header (cycling through the header range) and calls its
// function with the argument order swapped relative to the declaration,
// which gives indexers a non-trivial call edge to resolve.
func sourceTemplate(i, headerCount int) string {
	h := i % headerCount
	return fmt.Sprintf(`#include <file_%d.h>

static void test_%d(int a, int b) {
  foo_%d(b, a);
}`, h, i, h)
}

// generateSources writes all source files under `sources/`, bucketed into
// subdirectories of ceil(sources/subdirs) files each, and returns the
// generated paths in index order.
func (g *Generator) generateSources() ([]string, error) {
	p := g.project
	if err := os.Mkdir(p.sourcesDir(), 0o755); err != nil {
		return nil, err
	}

	perDir := ceilDiv(p.Sources, p.Subdirs)
	sources := make([]string, 0, p.Sources)
	for i := range p.Sources {
		subdir := filepath.Join(p.sourcesDir(), fmt.Sprintf("subdir_%d", i/perDir))
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return nil, err
		}

		path := filepath.Join(subdir, fmt.Sprintf("file_%d.cpp", i))
		if err := g.writeFile(path, []byte(sourceTemplate(i, p.Headers)), 0o644); err != nil {
			return nil, fmt.Errorf("write source %s: %w", path, err)
		}
		sources = append(sources, path)
		g.step()
	}

	return sources, nil
}
