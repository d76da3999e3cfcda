// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// Open runs the user's editor on path and waits for it to exit.
// The editor inherits the given streams.
func Open(ctx context.Context, path string, in io.Reader, out, errOut io.Writer) error {
	args := strings.Fields(Detect())
	if len(args) == 0 {
		return errors.New("no editor configured")
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // editor comes from the user's environment
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", args[0])
	}

	return nil
}

// Detect returns the editor command line to use.
// Fallback chain: $EDITOR → $VISUAL → code --wait → nano → vi
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Users of this tool usually have VS Code on PATH
	if _, err := exec.LookPath("code"); err == nil {
		return "code --wait"
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// POSIX standard fallback
	return "vi"
}
