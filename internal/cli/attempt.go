package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) attemptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "Record and list quiz and exam attempts",
	}

	saveQuiz := &cobra.Command{
		Use:   "save-quiz",
		Short: "Record a completed quiz attempt",
		Args:  cobra.NoArgs,
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, h.attempts.SaveQuiz(cmd.Context(), payload))
		}),
	}
	addPayloadFlags(saveQuiz)

	saveExam := &cobra.Command{
		Use:   "save-exam",
		Short: "Record a completed exam attempt",
		Args:  cobra.NoArgs,
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, h.attempts.SaveExam(cmd.Context(), payload))
		}),
	}
	addPayloadFlags(saveExam)

	listQuiz := &cobra.Command{
		Use:   "list-quiz [quiz-id]",
		Short: "List quiz attempts, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			return emit(cmd, h.attempts.ListQuiz(cmd.Context(), firstArg(args)))
		}),
	}

	listExam := &cobra.Command{
		Use:   "list-exam [exam-id]",
		Short: "List exam attempts, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			return emit(cmd, h.attempts.ListExam(cmd.Context(), firstArg(args)))
		}),
	}

	cmd.AddCommand(saveQuiz, saveExam, listQuiz, listExam)
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
