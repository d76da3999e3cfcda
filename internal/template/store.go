package template

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/vscode-kit/internal/logging"
	"github.com/thoreinstein/vscode-kit/pkg/fileutil"
)

// Source tells where resolved content came from.
type Source int

const (
	// SourceEmbedded is the built-in preset content.
	SourceEmbedded Source = iota
	// SourceOverride is a file read from the override directory.
	SourceOverride
)

func (s Source) String() string {
	if s == SourceOverride {
		return "override"
	}
	return "embedded"
}

// Store resolves template content, preferring an override directory
// over the embedded defaults.
type Store struct {
	overrideDir string
}

// NewStore creates a Store. An empty overrideDir means embedded content only.
func NewStore(overrideDir string) *Store {
	return &Store{overrideDir: overrideDir}
}

// OverrideDir returns the configured override directory, possibly empty.
func (s *Store) OverrideDir() string {
	return s.overrideDir
}

// OverridePath returns <override>/<preset dir>/<filename>, or "" when no
// override directory is configured.
func (s *Store) OverridePath(p Preset, k Kind) string {
	if s.overrideDir == "" {
		return ""
	}
	return filepath.Join(s.overrideDir, p.DirName(), k.Filename())
}

// Resolve returns the content for (preset, kind) and where it came from.
//
// The override file is returned verbatim when it can be read. Any read
// failure falls back to the embedded default and is only logged at debug
// level; Resolve itself never fails.
func (s *Store) Resolve(ctx context.Context, p Preset, k Kind) (string, Source) {
	if overridePath := s.OverridePath(p, k); overridePath != "" {
		content, err := fileutil.ReadTextWithLimit(overridePath)
		if err == nil {
			return content, SourceOverride
		}
		logging.FromContext(ctx).Debug("override unavailable, using embedded template",
			"path", overridePath, "error", err)
	}
	return Embedded(p, k), SourceEmbedded
}
