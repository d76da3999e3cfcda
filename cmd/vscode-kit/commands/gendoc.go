package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/paths"
)

// docsDir holds the value of the gen-doc --dir flag.
var docsDir string

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if docsDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Use --dir DIR")
		}

		if err := paths.EnsureDir(docsDir, paths.DefaultDirPerm); err != nil {
			return errors.Wrap(err, "creating output directory")
		}

		// Stable output so regenerated docs diff cleanly
		rootCmd.DisableAutoGenTag = true

		if err := doc.GenMarkdownTreeCustom(rootCmd, docsDir, docFrontMatter, docLink); err != nil {
			return errors.Wrap(err, "generating markdown")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", docsDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&docsDir, "dir", "d", "", "output directory for documentation")
	rootCmd.AddCommand(genDocCmd)
}

// docTitle turns vscode-kit_config_edit.md into "vscode-kit config edit".
func docTitle(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return strings.ReplaceAll(base, "_", " ")
}

func docFrontMatter(filename string) string {
	title := docTitle(filename)
	return fmt.Sprintf(`---
title: "%s"
description: "Reference for the %s command"
draft: false
toc: true
---
`, title, title)
}

func docLink(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
