package gen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CompileCommand is one entry of compile_commands.json.
type CompileCommand struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

const CompileCommandsFilename = "compile_commands.json"

// clang-cl gets MSVC-style flags instead of the generic driver flags
const clangCLSuffix = "clang-cl.exe"

// writeCompileCommands emits one compile invocation per source file, in
// source-generation order, and dumps the list as an indented JSON array at
// the project root. Every command carries the full set of include
// directories regardless of which header the source actually needs.
func (g *Generator) writeCompileCommands(sources, includeDirs []string) error {
	p := g.project
	projectDir := p.Dir()

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return err
	}
	absDir = filepath.ToSlash(absDir)

	includeFlags := make([]string, 0, len(includeDirs))
	for _, dir := range includeDirs {
		rel, err := filepath.Rel(projectDir, dir)
		if err != nil {
			return err
		}
		includeFlags = append(includeFlags, "-I"+filepath.ToSlash(rel))
	}
	slices.Sort(includeFlags)

	entries := make([]CompileCommand, 0, len(sources))
	for _, source := range sources {
		rel, err := filepath.Rel(projectDir, source)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		command := make([]string, 0, len(includeFlags)+5)
		command = append(command, p.Compiler)
		if strings.HasSuffix(p.Compiler, clangCLSuffix) {
			noext := strings.TrimSuffix(rel, ".cpp")
			command = append(command,
				"--driver-mode=cl",
				"/c",
				"/Foobj/"+noext+".obj",
				"/Fdobj/"+noext+".pdb",
			)
		} else {
			command = append(command, "-c", rel)
		}
		command = append(command, includeFlags...)

		entries = append(entries, CompileCommand{
			Directory: absDir,
			Command:   list2cmdline(command),
			File:      rel,
		})
	}

	f, err := os.Create(filepath.Join(projectDir, CompileCommandsFilename))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		f.Close()
		return fmt.Errorf("serialize compile database: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
