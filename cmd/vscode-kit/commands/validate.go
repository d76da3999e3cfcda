package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vscode-kit/internal/logging"
)

var validateTemplateRoot string

func init() {
	validateCmd.Flags().StringVar(&validateTemplateRoot, "template-root", "",
		"template directory to validate")
	_ = validateCmd.MarkFlagRequired("template-root")
	rootCmd.AddCommand(validateCmd)
}

// validateCmd echoes the directory it was given. No checks are performed yet.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate templates in the given directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logging.FromContext(cmd.Context()).Debug("validate performs no checks", "template_root", validateTemplateRoot)
		fmt.Fprintln(cmd.OutOrStdout(), validateTemplateRoot)
		return nil
	},
}
