package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newInlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inline [FILE|-]",
		Short: "Compile LESS source and print the CSS",
		Long:  "Compile LESS source from FILE, or from standard input when FILE is omitted or -, and print the CSS.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to open stylesheet"), "path", args[0])
				}
				defer f.Close() //nolint:errcheck // read-only file
				in = f
			}

			css, err := c.app.Inline(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), css)
			return err
		},
	}
}
