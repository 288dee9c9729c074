package commands

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/lesstag/internal/tui"
	"go.trai.ch/lesstag/internal/ui/output"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompile stylesheets next to their sources on change",
		Long: "Recompile stylesheets next to their sources on change. On a terminal the " +
			"rebuilds are shown in a live view unless --plain is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("plain")
			logJSON, _ := cmd.Flags().GetBool("log-json")
			if plain || logJSON || !output.IsTerminal(cmd.OutOrStdout()) {
				return c.app.Watch(cmd.Context(), nil)
			}
			return c.watchInteractive(cmd)
		},
	}
	cmd.Flags().Bool("plain", false, "Log rebuilds instead of showing the live view")
	return cmd
}

// watchInteractive runs the dev compiler behind a tui.Model. Log output is
// shown below the stylesheet list while the view is running.
func (c *CLI) watchInteractive(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	root, _ := os.Getwd()
	feed := tui.NewFeed()
	program := tea.NewProgram(
		tui.NewModel(feed, root),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	c.app.SetLogOutput(tui.NewLogWriter(program.Send))
	defer c.app.SetLogOutput(nil)

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- c.app.Watch(ctx, feed)
		feed.Close()
	}()

	_, runErr := program.Run()
	feed.Detach()
	cancel()

	if err := <-watchErr; err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return nil
}
