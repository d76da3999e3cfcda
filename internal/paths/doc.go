// Package paths provides path resolution for vscode-kit.
//
// It covers two areas: the tool's own configuration directory, which follows
// the XDG Base Directory Specification via github.com/adrg/xdg, and the
// editor configuration directory inside a project (.vscode).
//
//	paths.AppConfigDir()          // ~/.config/vscode-kit
//	paths.ProjectConfigDir(root)  // <root>/.vscode
//
// [CheckDir] is used for pre-flight validation of user supplied directories;
// it reports [errors.ErrNotFound] or [errors.ErrNotDirectory] so callers can
// phrase the message themselves.
package paths
