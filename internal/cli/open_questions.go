package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newOpenQuestionsCommand creates the open-questions command.
func newOpenQuestionsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
	}

	cmd := &cobra.Command{
		Use:     "open-questions",
		Aliases: []string{"open"},
		Short:   "List questions not yet closed by an answer",
		Long: `List every QUESTION whose id no ANSWER in the pad closes, in order
of first appearance.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.OpenQuestionsUseCase().Execute(cmd.Context(), usecase.OpenQuestionsInput{})
			if err != nil {
				return err
			}
			if opts.Output == outputText {
				if len(out.Questions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "(no open questions)")
				}
				for _, q := range out.Questions {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", q.ID, q.Header())
				}
			} else if err := printEntries(cmd.OutOrStdout(), opts.Output, out.Questions); err != nil {
				return err
			}
			if out.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d malformed entries\n", out.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
