// Package generator writes editor configuration files into a project's
// .vscode directory and reports what it created, skipped or failed to write.
package generator

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/vscode-kit/internal/logging"
	"github.com/thoreinstein/vscode-kit/internal/paths"
	"github.com/thoreinstein/vscode-kit/internal/template"
	"github.com/thoreinstein/vscode-kit/pkg/fileutil"
)

// Policy decides what happens when a target file already exists.
type Policy int

const (
	// PolicySkip leaves existing files untouched without asking.
	PolicySkip Policy = iota
	// PolicyPrompt asks the Prompter before replacing each existing file.
	PolicyPrompt
)

func (p Policy) String() string {
	if p == PolicyPrompt {
		return "prompt"
	}
	return "skip"
}

// Prompter confirms overwriting an existing file.
type Prompter interface {
	ConfirmOverwrite(path string) bool
}

// Resolver supplies the content for a preset and kind.
type Resolver interface {
	Resolve(ctx context.Context, p template.Preset, k template.Kind) (string, template.Source)
}

// Options describes one generation run.
type Options struct {
	// Root is the project root; files go to Root/.vscode.
	Root string
	// Kinds are processed in order. Duplicates are processed independently.
	Kinds []template.Kind
	// Preset selects the content bundle.
	Preset template.Preset
	// Policy applies to files that already exist.
	Policy Policy
}

// Generator runs generation against a Resolver and, for PolicyPrompt, a Prompter.
type Generator struct {
	resolver Resolver
	prompter Prompter
}

// New creates a Generator. prompter may be nil when only PolicySkip is used;
// a nil prompter under PolicyPrompt declines every overwrite.
func New(resolver Resolver, prompter Prompter) *Generator {
	return &Generator{
		resolver: resolver,
		prompter: prompter,
	}
}

// Run generates the requested files and returns the summary.
//
// Per-file failures are recorded and do not stop the run. Only a failure to
// create the .vscode directory ends the run early, with a single error entry
// for that directory.
func (g *Generator) Run(ctx context.Context, opts Options) *Summary {
	logger := logging.FromContext(ctx).With("preset", opts.Preset.String(), "policy", opts.Policy.String())
	summary := &Summary{}

	configDir := paths.ProjectConfigDir(opts.Root)
	if err := paths.EnsureDir(configDir, paths.DefaultDirPerm); err != nil {
		logger.Error("creating config directory", "path", configDir, "error", err)
		summary.failed(configDir, "failed to create .vscode: "+err.Error())
		return summary
	}

	for _, kind := range opts.Kinds {
		path := filepath.Join(configDir, kind.Filename())

		if paths.Exists(path) && !g.shouldOverwrite(opts.Policy, path) {
			logger.Info("skipping existing file", "path", path)
			summary.skipped(path)
			continue
		}

		content, source := g.resolver.Resolve(ctx, opts.Preset, kind)
		// Symlinked files are written through; the link itself stays
		if err := fileutil.AtomicWriteString(path, content, paths.DefaultFilePerm); err != nil {
			logger.Error("writing file", "path", path, "error", err)
			summary.failed(path, err.Error())
			continue
		}

		logger.Info("wrote file", "path", path, "kind", kind.String(), "source", source.String())
		summary.created(path)
	}

	return summary
}

func (g *Generator) shouldOverwrite(policy Policy, path string) bool {
	if policy != PolicyPrompt || g.prompter == nil {
		return false
	}
	return g.prompter.ConfirmOverwrite(path)
}
