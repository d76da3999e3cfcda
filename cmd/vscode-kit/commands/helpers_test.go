package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/vscode-kit/internal/template"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// resetFlags restores every flag variable to its default between runs of
// the shared rootCmd.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	loadedConfig = nil
	configLoadErr = nil

	generateProjectRoot = ""
	generateSelected = nil
	generatePreset = ""
	generateTemplateDir = ""
	generateInteractive = false
	generatePick = false
	generateFormat = "text"

	listProjectRoot = "."
	validateTemplateRoot = ""
	configShowPath = false
	docsDir = ""

	// Required-flag checks read Changed, which outlives a single Execute
	clearChanged(rootCmd)
}

func clearChanged(c *cobra.Command) {
	unset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(unset)
	c.PersistentFlags().VisitAll(unset)
	for _, sub := range c.Commands() {
		clearChanged(sub)
	}
}

// execute runs rootCmd with args, feeding stdin and capturing both output
// streams. The config search is isolated from the developer's machine and
// stdin is treated as a non-terminal.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return run(t, false, stdin, args...)
}

// executeWithTTY is execute with stdin reported as a terminal.
func executeWithTTY(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return run(t, true, stdin, args...)
}

func run(t *testing.T, tty bool, stdin string, args ...string) result {
	t.Helper()

	resetFlags()
	t.Setenv("VSCODE_KIT_CONFIG_DIR", t.TempDir())
	t.Setenv("VSCODE_KIT_DEBUG", "")

	origTTY := stdinIsTerminal
	stdinIsTerminal = func() bool { return tty }
	t.Cleanup(func() { stdinIsTerminal = origTTY })

	var stdout, stderr bytes.Buffer
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// fakePicker replaces the interactive picker for one test.
func fakePicker(t *testing.T, fn func(template.Preset, []template.Kind) ([]template.Kind, error)) {
	t.Helper()
	orig := pickKinds
	pickKinds = fn
	t.Cleanup(func() { pickKinds = orig })
}
