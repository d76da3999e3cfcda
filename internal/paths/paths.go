package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// AppName is the application name used for config directory naming.
const AppName = "vscode-kit"

// ConfigDirName is the editor configuration directory created inside a project.
const ConfigDirName = ".vscode"

// ConfigDirEnv overrides the location of the application config directory.
const ConfigDirEnv = "VSCODE_KIT_CONFIG_DIR"

// DefaultDirPerm is the permission for directories created inside a project.
const DefaultDirPerm = 0o755

// DefaultFilePerm is the permission for generated files.
const DefaultFilePerm = 0o644

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// It returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory holding vscode-kit's own config file.
// VSCODE_KIT_CONFIG_DIR takes precedence over <ConfigHome>/vscode-kit.
func AppConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ProjectConfigDir returns <root>/.vscode.
func ProjectConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// Exists reports whether path can be stat'ed.
// A stat failure of any kind counts as missing; a later write to such a
// path surfaces the real error.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckDir verifies that path exists and is a directory.
// It returns ErrNotFound or ErrNotDirectory wrapped with the path.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(errors.ErrNotFound, "%s", path)
		}
		return errors.Wrapf(err, "checking %s", path)
	}
	if !info.IsDir() {
		return errors.Wrapf(errors.ErrNotDirectory, "%s", path)
	}
	return nil
}
