package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vscode-kit/internal/cli/prompt"
	"github.com/thoreinstein/vscode-kit/internal/config"
	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/generator"
	"github.com/thoreinstein/vscode-kit/internal/logging"
	"github.com/thoreinstein/vscode-kit/internal/paths"
	"github.com/thoreinstein/vscode-kit/internal/report"
	"github.com/thoreinstein/vscode-kit/internal/template"
)

var (
	generateProjectRoot string
	generateSelected    []string
	generatePreset      string
	generateTemplateDir string
	generateInteractive bool
	generatePick        bool
	generateFormat      string
)

// stdinIsTerminal reports whether stdin is attached to a terminal.
var stdinIsTerminal = logging.StdinIsTTY

// pickKinds lets the user choose among candidates, previewing p's content.
var pickKinds = func(p template.Preset, candidates []template.Kind) ([]template.Kind, error) {
	idxs, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i].Filename()
		},
		fuzzyfinder.WithHeader("Select files to generate (Tab to mark, Enter to confirm)"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return template.Embedded(p, candidates[i])
		}),
	)
	if err != nil {
		return nil, err
	}

	picked := make([]template.Kind, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, candidates[i])
	}
	return picked, nil
}

func init() {
	generateCmd.Flags().StringVar(&generateProjectRoot, "project-root", "",
		"project directory where .vscode will be created")
	generateCmd.Flags().StringSliceVar(&generateSelected, "selected", nil,
		"files to create: launch, tasks, settings (comma-separated or repeated; default: all)")
	generateCmd.Flags().StringVar(&generatePreset, "preset", "",
		"template preset (default: python)")
	generateCmd.Flags().StringVar(&generateTemplateDir, "template-dir", "",
		"directory of <preset>/<file> templates overriding the built-in ones")
	generateCmd.Flags().BoolVar(&generateInteractive, "interactive", false,
		"ask before overwriting existing files")
	generateCmd.Flags().BoolVar(&generatePick, "pick", false,
		"choose files in an interactive picker (terminal only)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "text",
		"summary format: text, json")
	_ = generateCmd.MarkFlagRequired("project-root")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate VS Code files under <project-root>/.vscode",
	Long: `Generate launch.json, tasks.json and settings.json under
<project-root>/.vscode from the selected preset.

Existing files are skipped. When --interactive is set, or stdin is a
terminal, you are asked before each existing file is overwritten.

Files in --template-dir/<preset>/ replace the built-in content verbatim.
Missing or unreadable override files fall back to the built-in content.`,
	Example: `  # All files with the default preset
  vscode-kit generate --project-root .

  # A subset
  vscode-kit generate --project-root . --selected launch,settings

  # Machine-readable summary
  vscode-kit generate --project-root . --format json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	cfg := effectiveConfig()

	format, err := report.ParseFormat(generateFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format text or --format json")
	}

	if err := checkDirFlag(cmd.ErrOrStderr(), "project root", generateProjectRoot); err != nil {
		return err
	}

	templateDir := generateTemplateDir
	if templateDir == "" {
		templateDir = cfg.TemplateDir
	}
	if templateDir != "" {
		if err := checkDirFlag(cmd.ErrOrStderr(), "template dir", templateDir); err != nil {
			return err
		}
	}

	preset, err := resolvePreset(cfg)
	if err != nil {
		return errors.NewUserError(err, "Run 'vscode-kit generate --help' to see valid presets")
	}

	kinds, err := resolveKinds(cfg)
	if err != nil {
		return errors.NewUserError(err, "Run 'vscode-kit generate --help' to see valid file kinds")
	}

	interactive := stdinIsTerminal()

	if generatePick {
		if !interactive {
			logger.Warn("ignoring --pick: stdin is not a terminal")
		} else {
			kinds, err = pickKinds(preset, kinds)
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				logger.Info("selection aborted")
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "selecting files")
			}
		}
	}

	policy := generator.PolicySkip
	if generateInteractive || interactive {
		policy = generator.PolicyPrompt
	}

	// Keep stdout clean for the JSON document
	promptOut := cmd.OutOrStdout()
	if format == report.FormatJSON {
		promptOut = cmd.ErrOrStderr()
	}

	store := template.NewStore(templateDir)
	gen := generator.New(store, prompt.NewConfirmerWithIO(cmd.InOrStdin(), promptOut))

	logger.Debug("generating", "root", generateProjectRoot, "kinds", len(kinds), "template_dir", templateDir)
	summary := gen.Run(ctx, generator.Options{
		Root:   generateProjectRoot,
		Kinds:  kinds,
		Preset: preset,
		Policy: policy,
	})

	if err := report.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), format).Report(summary); err != nil {
		return err
	}

	if summary.HasErrors() {
		return errors.NewReportedError(errors.ErrGenerationFailed, errors.ExitUser)
	}
	return nil
}

// checkDirFlag prints the pre-flight message for a missing or non-directory
// path and returns an already-reported error.
func checkDirFlag(w io.Writer, what, path string) error {
	err := paths.CheckDir(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrNotDirectory):
		fmt.Fprintf(w, "Error: %s is not a directory: %s\n", what, path)
	default:
		fmt.Fprintf(w, "Error: %s does not exist: %s\n", what, path)
	}
	return errors.NewReportedError(err, errors.ExitUser)
}

func resolvePreset(cfg *config.Config) (template.Preset, error) {
	if generatePreset != "" {
		return template.ParsePreset(generatePreset)
	}
	return cfg.Preset()
}

func resolveKinds(cfg *config.Config) ([]template.Kind, error) {
	if len(generateSelected) > 0 {
		return template.ParseKinds(generateSelected)
	}
	return cfg.Kinds()
}
