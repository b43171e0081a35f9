package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show pass-rate and average-score summaries",
		Args:  cobra.NoArgs,
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			return emit(cmd, h.performance.Report(cmd.Context()))
		}),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "subjects",
			Short: "Exam performance per subject",
			Args:  cobra.NoArgs,
			RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
				return emit(cmd, h.performance.Subjects(cmd.Context()))
			}),
		},
		&cobra.Command{
			Use:   "topics",
			Short: "Quiz performance per topic",
			Args:  cobra.NoArgs,
			RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
				return emit(cmd, h.performance.Topics(cmd.Context()))
			}),
		},
	)
	return cmd
}
