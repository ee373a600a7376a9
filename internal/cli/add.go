package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newAddCommand creates the add command for appending an entry of any type.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type   string
		Agent  string
		Role   string
		Text   string
		ID     string
		Closes string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an entry to the pad",
		Long: `Append one typed entry to the pad.

Valid types are TASK, POINTER, NOTE, QUESTION and ANSWER
(case-insensitive). The pad is created on first append if needed.

The agent name is resolved from --agent, the AGENT_NAME environment
variable, the config file, or $USER, in that order.

Examples:
  # Leave a note
  agentpad add --type note --text "rate limiter deployed to staging"

  # Record a task for another agent
  agentpad add --type task --agent planner --text "backfill January data"

  # Point at an artifact
  agentpad add --type pointer --text "profiling results: ./out/pprof-0412.svg"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, role := resolveIdentity(c, opts.Agent, opts.Role)
			out, err := c.AddEntryUseCase().Execute(cmd.Context(), usecase.AddEntryInput{
				Type:   opts.Type,
				Agent:  agent,
				Role:   role,
				Body:   opts.Text,
				ID:     opts.ID,
				Closes: opts.Closes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Entry.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Entry type: TASK, POINTER, NOTE, QUESTION or ANSWER")
	cmd.Flags().StringVar(&opts.Agent, "agent", "", "Agent name (default: resolved from environment/config)")
	cmd.Flags().StringVar(&opts.Role, "role", "", "Agent role (optional)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "Entry body")
	cmd.Flags().StringVar(&opts.ID, "id", "", "Explicit question id (QUESTION only)")
	cmd.Flags().StringVar(&opts.Closes, "closes", "", "Question id being answered (ANSWER only)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
