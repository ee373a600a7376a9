package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newTailCommand creates the tail command for reading recent entries.
func newTailCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Count  int
		Output string
	}

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent entries",
		Long: `Show the last N well-formed entries in file order, most recent last.

Malformed entries are skipped and do not count toward N; a summary
of skips goes to stderr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TailEntriesUseCase().Execute(cmd.Context(), usecase.TailEntriesInput{Count: opts.Count})
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

	cmd.Flags().IntVarP(&opts.Count, "n", "n", 10, "Number of entries to show")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
