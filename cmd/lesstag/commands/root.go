// Package commands implements the CLI commands for lesstag.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lesstag/internal/app"
	"go.trai.ch/lesstag/internal/build"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

// CLI represents the command line interface for lesstag.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.ConfigureOptions) error
	Compile(ctx context.Context, paths []string) ([]app.CompileOutcome, error)
	Inline(ctx context.Context, r io.Reader) (string, error)
	Render(ctx context.Context, w io.Writer, templatePath, dataPath string) error
	Watch(ctx context.Context, reporter ports.RebuildReporter) error
	SetLogOutput(w io.Writer)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lesstag",
		Short:         "Compile LESS stylesheets for templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFileName, "Path to the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages and trace spans")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newInlineCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure loads the configuration named by the global flags.
func (c *CLI) configure(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	return c.app.Configure(app.ConfigureOptions{
		ConfigPath: configPath,
		Verbose:    verbose,
		LogJSON:    logJSON,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
