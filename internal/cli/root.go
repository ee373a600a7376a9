// Package cli provides the command-line interface for agentpad.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentpad/agentpad/internal/app"
)

// Command group IDs.
const (
	groupPad   = "pad"
	groupQuery = "query"
)

// launchPadTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchPadTUIFunc = launchPadTUI

// NewRootCommand creates the root command for agentpad.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var padFile string

	root := &cobra.Command{
		Use:   "agentpad",
		Short: "Shared append-only scratchpad for coordinating AI agents",
		Long: `agentpad maintains a single markdown scratchpad file that multiple
agents working in the same repository append to and read from.

Every entry is a timestamped, typed record (TASK, POINTER, NOTE,
QUESTION, ANSWER) with the producing agent's name. Questions carry
generated ids; answers reference them, so "what is still unanswered"
is always one command away.

The pad lives at scratchpad/AGENT_SCRATCHPAD.md under the repository
root by default; use --file or .agentpad.toml to relocate it.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if c != nil && padFile != "" {
				c.RebindPadFile(padFile)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&padFile, "file", "", "Pad file path, relative to the repository root")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupPad, Title: "Pad Commands:"},
		&cobra.Group{ID: groupQuery, Title: "Query Commands:"},
	)

	// Writing commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupPad

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupPad

	questionCmd := newQuestionCommand(c)
	questionCmd.GroupID = groupPad

	answerCmd := newAnswerCommand(c)
	answerCmd.GroupID = groupPad

	// Reading commands
	tailCmd := newTailCommand(c)
	tailCmd.GroupID = groupQuery

	openQuestionsCmd := newOpenQuestionsCommand(c)
	openQuestionsCmd.GroupID = groupQuery

	listCmd := newListCommand(c)
	listCmd.GroupID = groupQuery

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupQuery

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupQuery

	root.AddCommand(
		initCmd,
		addCmd,
		questionCmd,
		answerCmd,
		tailCmd,
		openQuestionsCmd,
		listCmd,
		watchCmd,
		tuiCmd,
	)

	return root
}
