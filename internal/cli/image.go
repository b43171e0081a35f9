package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) imageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Import images into the data directory and read them back",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "import <file>",
			Short: "Copy an image into the data directory and print its relative path",
			Args:  cobra.ExactArgs(1),
			RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
				return emit(cmd, h.media.Import(cmd.Context(), args[0]))
			}),
		},
		&cobra.Command{
			Use:   "read <path>",
			Short: "Print an imported image as a base64 data URL",
			Args:  cobra.ExactArgs(1),
			RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
				return emit(cmd, h.media.Read(cmd.Context(), args[0]))
			}),
		},
	)
	return cmd
}
