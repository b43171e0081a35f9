// Package cli exposes every storage operation as a cobra command. Results
// are printed as JSON envelopes on stdout; logs go to stderr.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// Execute runs the command tree with args and closes storage afterwards.
func Execute(ctx context.Context, args []string) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizforge",
		Short:         "Assessment content store",
		Long:          "quizforge stores subjects, topics, questions, quizzes and exams, records attempts and reports pass rates.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")
	root.PersistentFlags().String("data-dir", "", "Private data directory (overrides QUIZFORGE_DATA_DIR env var)")
	root.PersistentFlags().String("log-level", "", "Log level (overrides LOG_LEVEL env var)")

	for _, r := range resources {
		root.AddCommand(a.resourceCmd(r))
	}
	root.AddCommand(a.attemptCmd(), a.reportCmd(), a.imageCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quizforge", version)
		},
	}
}
