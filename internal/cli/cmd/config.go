package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbshell/internal/cli/styles"
	"github.com/bnema/dumbshell/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and reset configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration dumbshell would run with: the config file merged
with defaults and DUMBSHELL_* environment overrides.`,
	RunE: runConfigShow,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with defaults",
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	_, statErr := os.Stat(app.ConfigFile)
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(app.ConfigFile, statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	if app.LoadErr != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(app.LoadErr))
		return app.LoadErr
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderTOML(data))
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	_, statErr := os.Stat(app.ConfigFile)
	exists := statErr == nil
	if exists && !configYes {
		ok, err := confirmReset(app.Theme, cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprint(out, renderer.RenderAborted())
			return nil
		}
	}

	if err := resetConfig(app.ConfigFile); err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprint(out, renderer.RenderResetSuccess(app.ConfigFile))
	return nil
}

// resetConfig writes the default configuration to path.
func resetConfig(path string) error {
	if path == "" {
		return errors.New("config file path is empty")
	}
	return config.WriteConfig(config.DefaultConfig(), path)
}

func confirmReset(theme *styles.Theme, in io.Reader, out io.Writer) (bool, error) {
	prompt := styles.NewConfirm(theme, "Overwrite the config file with defaults?")
	final, err := tea.NewProgram(prompt, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	result, ok := final.(styles.ConfirmModel)
	return ok && result.Result(), nil
}
