// Package config provides configuration management for the vscode-kit CLI.
//
// The configuration file is optional. It is read as YAML from config.yaml in
// the application config directory (~/.config/vscode-kit on Linux, or
// $VSCODE_KIT_CONFIG_DIR when set), or from the file given with --config.
// The working directory is not searched:
//
//	version: 1
//	default_preset: python
//	default_kinds:
//	  - launch
//	  - tasks
//	template_dir: ~/vscode-templates   # optional
//
// Every key can also be set through the environment with the VSCODE_KIT_
// prefix, for example VSCODE_KIT_DEFAULT_PRESET. Command-line flags take
// precedence over both.
//
// Call [Init] once at startup, then [Load]. Loaded values are checked with
// [Validate]; the accessors [Config.Preset] and [Config.Kinds] parse the
// string values into template types.
package config
