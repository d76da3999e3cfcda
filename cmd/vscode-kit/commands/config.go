package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vscode-kit/internal/config"
	"github.com/thoreinstein/vscode-kit/internal/editor"
	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/logging"
	"github.com/thoreinstein/vscode-kit/internal/paths"
)

var configShowPath bool

func init() {
	configCmd.Flags().BoolVar(&configShowPath, "path", false,
		"print the config file in use instead of the values")
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Long: `Open the config file in $EDITOR (then $VISUAL, code, nano, vi).

The file in use is opened. When none exists, one is created with the
default values in the application config directory first.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration vscode-kit runs with, after applying the config
file and VSCODE_KIT_* environment variables to the defaults.`,
	Example: `  # Print effective values
  vscode-kit config

  # Which file was loaded
  vscode-kit config --path

  # Open the config file in $EDITOR
  vscode-kit config edit`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if configShowPath {
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintln(w, used)
			return nil
		}
		fmt.Fprintf(w, "no config file loaded (looked for %s)\n", config.DefaultPath())
		return nil
	}

	data, err := yaml.Marshal(effectiveConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(w, string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("creating config file", "path", path)
		if err := config.Save(path, config.Default()); err != nil {
			return errors.NewSystemError(err, "Check permissions on "+paths.AppConfigDir())
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
	return editor.Open(cmd.Context(), path, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
