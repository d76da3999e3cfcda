// Package template maps a preset and a kind of editor configuration file to
// the text that should be written for it.
//
// Kinds and presets are closed enumerations with exhaustive lookup tables:
//
//	| Kind     | File          |
//	|----------|---------------|
//	| launch   | launch.json   |
//	| tasks    | tasks.json    |
//	| settings | settings.json |
//
// Built-in content is embedded at build time from presets/<preset>/.
// A [Store] configured with an override directory first tries
// <override>/<preset>/<file>; the override replaces the built-in content
// entirely and is never parsed or merged.
package template
