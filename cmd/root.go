// bigproj [flags], bigproj gen [flags]
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bigproj-build/bigproj/internal/gen"
	"github.com/bigproj-build/bigproj/internal/msg"
	"github.com/spf13/cobra"
)

var (
	flagCompiler string
	flagSources  int
	flagHeaders  int
	flagSubdirs  int
	flagOutput   string
	flagName     string
	flagPreset   string
	flagQuiet    bool
)

// resolveProject turns flags (and the optional preset manifest) into an
// immutable project descriptor. Preset values only apply where the
// corresponding flag was not set explicitly.
func resolveProject(cmd *cobra.Command) (*gen.Project, error) {
	p := &gen.Project{
		Name:       flagName,
		Compiler:   flagCompiler,
		Sources:    flagSources,
		Headers:    flagHeaders,
		Subdirs:    flagSubdirs,
		OutputRoot: flagOutput,
	}

	if flagPreset != "" {
		preset, err := gen.ParsePresetFromFile(flagPreset)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if !flags.Changed("compiler") && preset.Project.Compiler != "" {
			p.Compiler = preset.Project.Compiler
		}
		if !flags.Changed("sources") && preset.Project.Sources != 0 {
			p.Sources = preset.Project.Sources
		}
		if !flags.Changed("headers") && preset.Project.Headers != 0 {
			p.Headers = preset.Project.Headers
		}
		if !flags.Changed("subdirs") && preset.Project.Subdirs != 0 {
			p.Subdirs = preset.Project.Subdirs
		}
		if !flags.Changed("output") && preset.Project.Output != "" {
			p.OutputRoot = preset.Project.Output
		}
		if !flags.Changed("name") && preset.Project.Name != "" {
			p.Name = preset.Project.Name
		}
	}

	if p.OutputRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		p.OutputRoot = cwd
	}
	if p.Name == "" {
		p.Name = gen.DefaultName(p.Sources, p.Headers)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func doGenerate(cmd *cobra.Command, args []string) {
	project, err := resolveProject(cmd)
	if err != nil {
		msg.Fatal("%v", err)
	}

	// nothing may touch the filesystem before this check passes
	if err := project.CheckCompiler(); err != nil {
		msg.Fatal("%v", err)
	}

	msg.Info("generating project at %s", filepath.ToSlash(project.Dir()))

	g := gen.NewGenerator(project)
	var pb *msg.ProgressBar
	if !flagQuiet {
		pb = msg.NewProgressBar(int64(project.Sources+project.Headers), 2, os.Stderr)
		g.SetProgress(pb)
	}

	if err := g.Run(); err != nil {
		msg.Fatal("%v", err)
	}
	if pb != nil {
		pb.Finish()
	}
	msg.Info("generated %d sources and %d headers", project.Sources, project.Headers)
}

var rootCmd = &cobra.Command{
	Use:   "bigproj",
	Short: "Synthetic C/C++ project generator",
	Long:  `Generates a large artificial C/C++ source tree together with a compile_commands.json manifest, for benchmarking build tools, indexers and compilers.`,
	Args:  cobra.NoArgs,
	Run:   doGenerate,
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the project",
	Long:  `Generate the project. Equivalent to running with no subcommand.`,
	Args:  cobra.NoArgs,
	Run:   doGenerate,
}

func init() {
	addGenerateFlags(rootCmd)

	// bigproj gen subcommand
	rootCmd.AddCommand(genCmd)
	addGenerateFlags(genCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagCompiler, "compiler", "c", "", "Path to the compiler")
	cmd.Flags().IntVarP(&flagSources, "sources", "s", gen.DefaultSources, "Number of source files")
	cmd.Flags().IntVarP(&flagHeaders, "headers", "H", gen.DefaultHeaders, "Number of header files")
	cmd.Flags().IntVarP(&flagSubdirs, "subdirs", "d", gen.DefaultSubdirs, "Number of sub-directories")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output directory (current directory by default)")
	cmd.Flags().StringVarP(&flagName, "name", "n", "", "Project name (auto-generated by default)")
	cmd.Flags().StringVarP(&flagPreset, "config", "C", "", "Read defaults from a TOML preset")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress the progress bar")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
