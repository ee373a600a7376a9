package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive viewer.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive pad viewer",
		Long: `Launch a terminal viewer that renders the pad and refreshes as
other agents append to it.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchPadTUIFunc(c)
		},
	}
}

// launchPadTUI runs the bubbletea viewer until the user quits.
func launchPadTUI(c *app.Container) error {
	m := tui.New(c.Pad, c.Watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
