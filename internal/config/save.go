package config

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/paths"
	"github.com/thoreinstein/vscode-kit/pkg/fileutil"
)

// FileName is the config file looked up in each search path.
const FileName = "config.yaml"

// DefaultPath returns the config file location in the application config
// directory.
func DefaultPath() string {
	return filepath.Join(paths.AppConfigDir(), FileName)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	return errors.Wrap(fileutil.AtomicWriteFile(path, data, 0o600), "writing config")
}
