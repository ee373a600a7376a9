package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/domain"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newQuestionCommand creates the question command, a shorthand for adding a
// QUESTION entry that prints the generated id.
func newQuestionCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Agent string
		Role  string
		Text  string
		ID    string
	}

	cmd := &cobra.Command{
		Use:   "question",
		Short: "Ask a question on the pad",
		Long: `Append a QUESTION entry and print its id.

The id is generated unless --id is given. Other agents answer with
'agentpad answer --closes <id>'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, role := resolveIdentity(c, opts.Agent, opts.Role)
			out, err := c.AddEntryUseCase().Execute(cmd.Context(), usecase.AddEntryInput{
				Type:  string(domain.EntryQuestion),
				Agent: agent,
				Role:  role,
				Body:  opts.Text,
				ID:    opts.ID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Agent, "agent", "", "Agent name (default: resolved from environment/config)")
	cmd.Flags().StringVar(&opts.Role, "role", "", "Agent role (optional)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "Question body")
	cmd.Flags().StringVar(&opts.ID, "id", "", "Explicit question id instead of a generated one")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
