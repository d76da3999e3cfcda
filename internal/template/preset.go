package template

import (
	"strings"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// Preset names a bundle of default content for every kind.
type Preset int

// Supported presets.
const (
	PresetPython Preset = iota
)

// presetDirs maps each preset to its directory name, used both for the
// embedded defaults and for override lookup.
var presetDirs = map[Preset]string{
	PresetPython: "python",
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = PresetPython

// Presets returns all presets.
func Presets() []Preset {
	return []Preset{PresetPython}
}

// PresetNames returns the names of all presets.
func PresetNames() []string {
	presets := Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.String()
	}
	return names
}

// String returns the preset name as accepted by --preset.
func (p Preset) String() string {
	if dir, ok := presetDirs[p]; ok {
		return dir
	}
	return "unknown"
}

// DirName returns the subdirectory holding the preset's files.
func (p Preset) DirName() string {
	return presetDirs[p]
}

// ParsePreset converts a --preset value to a Preset.
func ParsePreset(s string) (Preset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, dir := range presetDirs {
		if dir == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownPreset, "%q (valid: %s)", s, strings.Join(PresetNames(), ", "))
}
