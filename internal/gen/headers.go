package gen

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

func headerTemplate(i int) string {
	return fmt.Sprintf(`#pragma once

// Some function
void foo_%d(int a, int b);`, i)
}

// generateHeaders writes all header files under `includes/` and returns
// the sorted, deduplicated list of subdirectories that contain at least
// one header. The caller passes the whole list to every compile command;
// there is no per-source include path mapping.
func (g *Generator) generateHeaders() ([]string, error) {
	p := g.project
	if err := os.Mkdir(p.includesDir(), 0o755); err != nil {
		return nil, err
	}

	perDir := ceilDiv(p.Headers, p.Subdirs)
	includeDirs := make(map[string]struct{})
	for i := range p.Headers {
		subdir := filepath.Join(p.includesDir(), fmt.Sprintf("subdir_%d", i/perDir))
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return nil, err
		}
		includeDirs[subdir] = struct{}{}

		path := filepath.Join(subdir, fmt.Sprintf("file_%d.h", i))
		if err := g.writeFile(path, []byte(headerTemplate(i)), 0o644); err != nil {
			return nil, fmt.Errorf("write header %s: %w", path, err)
		}
		g.step()
	}

	return slices.Sorted(maps.Keys(includeDirs)), nil
}
