package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/domain"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newAnswerCommand creates the answer command, a shorthand for adding an
// ANSWER entry that closes a question.
func newAnswerCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Agent  string
		Role   string
		Text   string
		Closes string
	}

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Answer a question on the pad",
		Long: `Append an ANSWER entry that closes a question by id.

The referenced question is not required to exist in the pad; an
answer to an unknown id is recorded but resolves nothing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, role := resolveIdentity(c, opts.Agent, opts.Role)
			out, err := c.AddEntryUseCase().Execute(cmd.Context(), usecase.AddEntryInput{
				Type:   string(domain.EntryAnswer),
				Agent:  agent,
				Role:   role,
				Body:   opts.Text,
				Closes: opts.Closes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Entry.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Agent, "agent", "", "Agent name (default: resolved from environment/config)")
	cmd.Flags().StringVar(&opts.Role, "role", "", "Agent role (optional)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "Answer body")
	cmd.Flags().StringVar(&opts.Closes, "closes", "", "Id of the question being answered")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("closes")

	return cmd
}
