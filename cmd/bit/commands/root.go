// Package commands implements the CLI commands for the bit component registry.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bit/internal/app"
	"go.trai.ch/bit/internal/build"
	"go.trai.ch/bit/internal/core/domain"
)

// CLI represents the command line interface for bit.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions)
	EnableTracing() func(context.Context) error

	Init(ctx context.Context, path string, opts app.InitOptions) (string, error)
	Create(ctx context.Context, rawID string, withSpec bool) (*domain.Bit, error)
	Remove(ctx context.Context, rawID string) error
	ListInline(ctx context.Context) (domain.Bits, error)
	Export(ctx context.Context, rawID string) (domain.Bits, error)
	Import(ctx context.Context, rawIDs []string) (domain.Bits, error)
	Test(ctx context.Context, rawID string) (domain.TestReport, error)
	Build(ctx context.Context, rawID string) (*domain.Bit, error)
	Modify(ctx context.Context, rawID string) (*domain.Bit, error)

	Get(ctx context.Context, rawID string) (domain.Bits, error)
	Show(ctx context.Context, rawID string) (*domain.Bit, error)
	List(ctx context.Context, alias string) ([]string, error)
	Push(ctx context.Context, rawIDs []string, alias string) (domain.BitIDs, error)
	Search(ctx context.Context, query string, opts app.SearchOptions) ([]domain.SearchResult, error)
	Describe(ctx context.Context, alias string) (domain.ScopeDescription, error)
	Pack(ctx context.Context, rawID string) (string, error)
	Upload(ctx context.Context, path string) error
	Serve(ctx context.Context, address string) error

	Remotes(ctx context.Context, global bool) ([]domain.Remote, error)
	AddRemote(ctx context.Context, rawAlias, host string, global bool) error
	RemoveRemote(ctx context.Context, alias string, global bool) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bit",
		Short:         "A decentralized registry for reusable code components",
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

	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every finished span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		quiet, _ := cmd.Flags().GetBool("quiet")
		trace, _ := cmd.Flags().GetBool("trace")

		c.app.ConfigureLogging(app.LogOptions{JSON: jsonLog, Quiet: quiet})
		if trace {
			c.shutdown = c.app.EnableTracing()
		}
	}

	rootCmd.AddCommand(
		c.newInitCmd(),
		c.newCreateCmd(),
		c.newRemoveCmd(),
		c.newStatusCmd(),
		c.newExportCmd(),
		c.newImportCmd(),
		c.newTestCmd(),
		c.newBuildCmd(),
		c.newModifyCmd(),
		c.newGetCmd(),
		c.newShowCmd(),
		c.newListCmd(),
		c.newPushCmd(),
		c.newSearchCmd(),
		c.newDescribeCmd(),
		c.newPackCmd(),
		c.newUploadCmd(),
		c.newServeCmd(),
		c.newRemoteCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(context.WithoutCancel(ctx)))
	}
	return err
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
