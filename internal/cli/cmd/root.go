// Package cmd provides Cobra CLI commands for dumbshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbshell/internal/cli"
	"github.com/bnema/dumbshell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   build.Name,
		Short: "A minimal WebKitGTK shell with in-window script dialogs",
		Long: `dumbshell - an address bar on top of a WebKitGTK view.

Pages that call alert() or confirm() get an in-window dialog instead of
WebKit's default one; the page stays suspended until the dialog is answered.

Run 'dumbshell' or 'dumbshell browse [url]' to open the window, or the config
subcommands to inspect and reset the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help; main.go runs the GUI before cobra.
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the shell window",
	Long: `Launch the GTK4 shell window.

If a URL is provided, load it instead of shell.start_url.

Examples:
  dumbshell browse                       # Open shell.start_url
  dumbshell browse https://example.com   # Open a specific page`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, _ []string) {
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
