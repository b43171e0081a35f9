package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stemsi/quizforge/internal/response"
)

// emit writes the envelope as indented JSON to stdout. An error envelope
// also fails the command so the process exits non-zero.
func emit(cmd *cobra.Command, resp response.Response) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if !resp.OK() {
		return fmt.Errorf("%s: %s", resp.Error.Code, resp.Error.Message)
	}
	return nil
}

func addPayloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read the JSON payload from a file (- for stdin)")
	cmd.Flags().StringP("data", "d", "", "JSON payload given inline")
	cmd.MarkFlagsMutuallyExclusive("file", "data")
}

// readPayload returns the JSON payload named by --data or --file.
func readPayload(cmd *cobra.Command) ([]byte, error) {
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		return []byte(data), nil
	}

	file, _ := cmd.Flags().GetString("file")
	switch file {
	case "":
		return nil, fmt.Errorf("a payload is required: use --data or --file")
	case "-":
		return io.ReadAll(cmd.InOrStdin())
	default:
		return os.ReadFile(file)
	}
}
