// Package errors provides error handling conventions for the vscode-kit CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. The wrapping helpers are thin
// re-exports of github.com/cockroachdb/errors so callers need a single
// import.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (bad flags, missing project root, failed file writes)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := kiterrors.NewUserError(kiterrors.ErrNotFound, "Check --project-root")
//	var exitErr *kiterrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
