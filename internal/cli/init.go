package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newInitCommand creates the init command for creating the pad file.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the scratchpad file with its preamble",
		Long: `Create the scratchpad file and write its explanatory preamble.

Running init on an existing pad is a no-op; the pad is never
truncated or rewritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitPadUseCase().Execute(cmd.Context(), usecase.InitPadInput{})
			if err != nil {
				return err
			}
			if out.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized pad at %s\n", out.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pad already exists at %s\n", out.Path)
			}
			return nil
		},
	}
}
