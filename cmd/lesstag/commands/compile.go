package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lesstag/internal/app"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/ui/output"
	"go.trai.ch/lesstag/internal/ui/style"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile PATH...",
		Short: "Compile stylesheets and print their artifact paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			outcomes, err := c.app.Compile(cmd.Context(), args)
			if err != nil {
				return err
			}
			if failed := printOutcomes(cmd.OutOrStdout(), outcomes); failed > 0 {
				return domain.ErrCompileFailed
			}
			return nil
		},
	}
}

// printOutcomes writes one line per outcome and returns the number of failures.
func printOutcomes(w io.Writer, outcomes []app.CompileOutcome) int {
	r := output.Renderer(w)
	ok := r.NewStyle().Foreground(style.Green).Render(style.Check)
	fail := r.NewStyle().Foreground(style.Red).Render(style.Cross)
	dim := r.NewStyle().Foreground(style.Slate)

	failed := 0
	for _, o := range outcomes {
		if o.Result.OK() {
			_, _ = fmt.Fprintf(w, "%s %s %s %s\n", ok, o.Path, dim.Render(style.Arrow), o.Result.Value())
			continue
		}
		failed++
		_, _ = fmt.Fprintf(w, "%s %s %s\n", fail, o.Path, dim.Render("(not compiled)"))
	}
	return failed
}
