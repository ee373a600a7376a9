package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newListCommand creates the list command for filtering entries by type.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type   string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries of one type",
		Long: `List every entry of the given type in file order.

Examples:
  agentpad list --type task
  agentpad list --type pointer -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.FilterEntriesUseCase().Execute(cmd.Context(), usecase.FilterEntriesInput{Type: opts.Type})
			if err != nil {
				return err
			}
			if err := printEntries(cmd.OutOrStdout(), opts.Output, out.Entries); err != nil {
				return err
			}
			if out.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d malformed entries\n", out.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Entry type: TASK, POINTER, NOTE, QUESTION or ANSWER")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
