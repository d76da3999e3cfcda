// Package main is the entry point for the vscode-kit CLI.
package main

import (
	"os"

	"github.com/thoreinstein/vscode-kit/cmd/vscode-kit/commands"
	"github.com/thoreinstein/vscode-kit/internal/errors"
)

func main() {
	err := commands.Execute()
	commands.ReportError(os.Stderr, err)
	os.Exit(errors.ExitCode(err))
}
