// Package logging provides structured logging for the vscode-kit CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package; the text handler colourises output with
// github.com/fatih/color when writing to a terminal.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("writing file", "path", path)
//
// # Context
//
// Commands store the configured logger in their context with [NewContext];
// lower layers retrieve it with [FromContext], which falls back to
// [slog.Default].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
