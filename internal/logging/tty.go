package logging

import (
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and wrappers around it.
type fder interface {
	Fd() uintptr
}

// IsTTY reports whether v, typically an io.Reader or io.Writer, is backed
// by a terminal. Values without a file descriptor never are.
func IsTTY(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// StdinIsTTY reports whether the process's stdin is a terminal.
func StdinIsTTY() bool {
	return IsTTY(os.Stdin)
}

// SupportsColor reports whether ANSI colour should be written to w.
//
// CLICOLOR_FORCE=1 forces colour on. Otherwise colour is off when NO_COLOR
// is set, when TERM is "dumb", or when w is not a terminal.
func SupportsColor(w any) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if os.Getenv("CLICOLOR_FORCE") == "1" {
		return true
	}

	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}
