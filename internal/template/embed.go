package template

import (
	"embed"
	"fmt"
	"path"
)

// presetFS holds the built-in content for every preset, laid out as
// presets/<preset dir>/<kind filename>.
//
//go:embed presets
var presetFS embed.FS

// embedded is filled once at init so lookups cannot fail at run time.
var embedded = loadEmbedded()

func loadEmbedded() map[Preset]map[Kind]string {
	table := make(map[Preset]map[Kind]string, len(presetDirs))
	for _, p := range Presets() {
		byKind := make(map[Kind]string, len(kindFilenames))
		for _, k := range AllKinds() {
			name := path.Join("presets", p.DirName(), k.Filename())
			data, err := presetFS.ReadFile(name)
			if err != nil {
				panic(fmt.Sprintf("missing embedded template %s: %v", name, err))
			}
			byKind[k] = string(data)
		}
		table[p] = byKind
	}
	return table
}

// Embedded returns the built-in content for (preset, kind).
func Embedded(p Preset, k Kind) string {
	return embedded[p][k]
}
