// Package commands implements the CLI commands for texpkg.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/texpkg/internal/app"
	"go.trai.ch/texpkg/internal/build"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for texpkg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "texpkg",
		Short:         "Install the TeX Live packages your LaTeX sources need",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
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

	rootCmd.Flags().StringP("config", "c", domain.ConfigFileName, "Path to the package configuration file")
	rootCmd.Flags().String("tex-root", "", "Directory tex_globs are resolved against (default: the config file's directory)")
	rootCmd.Flags().Int("timeout", 0, "Per-package install timeout in seconds (overrides settings.install_timeout_seconds)")
	rootCmd.Flags().Bool("dry-run", false, "Print the resolved package list and exit")
	rootCmd.Flags().Bool("verify-only", false, "Check that every resolved package is installed without installing anything")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	texRoot, _ := cmd.Flags().GetString("tex-root")
	timeoutSeconds, _ := cmd.Flags().GetInt("timeout")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verifyOnly, _ := cmd.Flags().GetBool("verify-only")

	var timeout time.Duration
	if cmd.Flags().Changed("timeout") {
		if timeoutSeconds <= 0 {
			return zerr.With(domain.ErrInvalidTimeout, "timeout", timeoutSeconds)
		}
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		ConfigPath:     configPath,
		TexRoot:        texRoot,
		InstallTimeout: timeout,
		DryRun:         dryRun,
		VerifyOnly:     verifyOnly,
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
