// bigproj verify [project dir]
package cmd

import (
	"github.com/bigproj-build/bigproj/internal/gen"
	"github.com/bigproj-build/bigproj/internal/msg"
	"github.com/spf13/cobra"
)

func doVerify(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	report, err := gen.Verify(dir)
	if err != nil {
		msg.Fatal("%v", err)
	}
	msg.Info("ok: %d sources, %d headers, %d compile database entries",
		report.SourceFiles, report.HeaderFiles, report.Entries)
}

var verifyCmd = &cobra.Command{
	Use:   "verify [project dir]",
	Short: "Check a generated project against its compile database",
	Long:  `Check a generated project against its compile database. If no project dir is given, uses "."`,
	Args:  cobra.MaximumNArgs(1),
	Run:   doVerify,
}

func init() {
	// bigproj verify subcommand
	rootCmd.AddCommand(verifyCmd)
}
