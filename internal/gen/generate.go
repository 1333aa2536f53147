package gen

import (
	"fmt"
	"os"

	"github.com/bigproj-build/bigproj/internal/msg"
)

// Generator writes one Project to disk. Generation is sequential: the
// dominant cost at tens of thousands of files is filesystem metadata, so
// there is nothing to gain from fanning out.
type Generator struct {
	project  *Project
	progress *msg.ProgressBar

	// overridable for fault injection in tests
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func NewGenerator(p *Project) *Generator {
	return &Generator{project: p, writeFile: os.WriteFile}
}

// SetProgress attaches a progress bar advanced once per generated file.
func (g *Generator) SetProgress(pb *msg.ProgressBar) {
	g.progress = pb
}

func (g *Generator) step() {
	if g.progress != nil {
		g.progress.Add(1)
	}
}

// CheckCompiler verifies that the configured compiler path refers to an
// existing regular file. Called before any filesystem mutation.
func (p *Project) CheckCompiler() error {
	info, err := os.Stat(p.Compiler)
	if err != nil || info.IsDir() {
		return fmt.Errorf("no compiler at %s", p.Compiler)
	}
	return nil
}

// Run generates the whole project: sources, headers, then the compile
// database. Any pre-existing directory at the target path is removed
// first. If any step fails, the partially written tree is deleted before
// the error propagates, so the project directory either does not exist or
// is complete.
func (g *Generator) Run() (err error) {
	dir := g.project.Dir()

	if _, serr := os.Stat(dir); serr == nil {
		msg.Info("removing existing project")
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("remove existing project: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			msg.Error("project generation failed, cleaning up...")
			os.RemoveAll(dir) // best effort, the original error wins
		}
	}()

	sources, err := g.generateSources()
	if err != nil {
		return err
	}

	includeDirs, err := g.generateHeaders()
	if err != nil {
		return err
	}

	return g.writeCompileCommands(sources, includeDirs)
}
