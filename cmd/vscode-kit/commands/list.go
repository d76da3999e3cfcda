package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vscode-kit/internal/logging"
)

var listProjectRoot string

func init() {
	listCmd.Flags().StringVar(&listProjectRoot, "project-root", ".",
		"project directory to inspect")
	rootCmd.AddCommand(listCmd)
}

// listCmd is reserved; it accepts its flags and succeeds without output.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logging.FromContext(cmd.Context()).Debug("list is not implemented", "project_root", listProjectRoot)
		return nil
	},
}
