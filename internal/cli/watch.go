package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/domain"
	"github.com/agentpad/agentpad/internal/usecase"
)

// newWatchCommand creates the watch command for following the pad.
func newWatchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the pad and print entries as they arrive",
		Long: `Block and print each entry appended to the pad by other agents,
in file order, until interrupted. Entries already present when the
watch starts are not replayed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return c.WatchEntriesUseCase().Execute(ctx, usecase.WatchEntriesInput{
				Emit: func(e *domain.Entry) {
					fmt.Fprint(cmd.OutOrStdout(), e.Render())
				},
			})
		},
	}
}
