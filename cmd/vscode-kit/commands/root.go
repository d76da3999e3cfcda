// Package commands implements the CLI commands for vscode-kit.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vscode-kit/cmd"
	"github.com/thoreinstein/vscode-kit/internal/config"
	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/logging"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "VSCODE_KIT_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read by initConfig.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"YAML config file (default: ~/.config/vscode-kit/config.yaml)")

	rootCmd.Version = cmd.BuildVersion()
	rootCmd.SetVersionTemplate("vscode-kit version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

// effectiveConfig returns the loaded configuration, or the defaults when
// nothing was loaded.
func effectiveConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

var rootCmd = &cobra.Command{
	Use:   "vscode-kit",
	Short: "Manage VS Code setting files",
	Long: `vscode-kit writes VS Code configuration files (launch.json, tasks.json
and settings.json) into a project's .vscode directory from built-in presets.

Existing files are never overwritten silently: they are skipped, or, when
running interactively, you are asked before each one is replaced. A template
directory can override any built-in file.`,
	Example: `  # Generate all files for the current project
  vscode-kit generate --project-root .

  # Only launch and settings, with custom templates
  vscode-kit generate --project-root . --selected launch,settings --template-dir ~/vscode-templates

  See Also: vscode-kit config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format := logging.Format(logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	// Summary output follows the same colour rules as the log handler
	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch format {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check that the --log-file directory exists and is writable")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	logger := slog.New(logging.NewMultiHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// configFreeCommands never read the configuration, so a broken config file
// must not stop them.
var configFreeCommands = map[string]bool{
	"help":     true,
	"version":  true,
	"list":     true,
	"validate": true,
	"gen-doc":  true,
}

// checkConfig surfaces config load errors for commands that use the config.
func checkConfig(cmd *cobra.Command) error {
	if configFreeCommands[cmd.Name()] {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ReportError writes err and its suggestion to w unless the command has
// already reported it.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	if !exitErr.Reported {
		fmt.Fprintf(w, "Error: %v\n", exitErr)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
}
