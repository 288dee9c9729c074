package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render TEMPLATE",
		Short: "Render an HTML template using the less template functions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			data, _ := cmd.Flags().GetString("data")
			return c.app.Render(cmd.Context(), cmd.OutOrStdout(), args[0], data)
		},
	}
	cmd.Flags().StringP("data", "d", "", "YAML file with the template data")
	return cmd
}
