package gen

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultSources = 50000
	DefaultHeaders = 10000
	DefaultSubdirs = 250
)

// Project describes one synthetic codebase. All parameters are resolved
// once at startup and never change afterwards.
type Project struct {
	Name       string
	Compiler   string
	Sources    int
	Headers    int
	Subdirs    int
	OutputRoot string
}

// DefaultName returns the fallback project name for the given counts,
// e.g. `BigProject_50000_10000`.
func DefaultName(sources, headers int) string {
	return fmt.Sprintf("BigProject_%d_%d", sources, headers)
}

// Dir returns the project directory, `<output root>/<name>`.
func (p *Project) Dir() string {
	return filepath.Join(p.OutputRoot, p.Name)
}

func (p *Project) sourcesDir() string {
	return filepath.Join(p.Dir(), "sources")
}

func (p *Project) includesDir() string {
	return filepath.Join(p.Dir(), "includes")
}

// ceilDiv rounds the quotient up, so the last bucket may hold fewer files
// than the others.
func ceilDiv(count, subdirs int) int {
	return (count + subdirs - 1) / subdirs
}

// Validate rejects parameter combinations that would make the bucketing
// arithmetic meaningless. Runs before any filesystem mutation.
func (p *Project) Validate() error {
	if p.Compiler == "" {
		return fmt.Errorf("no compiler path given")
	}
	if p.Sources < 1 {
		return fmt.Errorf("source count must be positive, got %d", p.Sources)
	}
	if p.Headers < 1 {
		return fmt.Errorf("header count must be positive, got %d", p.Headers)
	}
	if p.Subdirs < 1 {
		return fmt.Errorf("subdirectory count must be positive, got %d", p.Subdirs)
	}
	return nil
}
