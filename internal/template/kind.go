package template

import (
	"strings"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// Kind identifies one of the editor configuration files.
type Kind int

// Supported kinds. The declaration order is the default generation order.
const (
	KindLaunch Kind = iota
	KindTasks
	KindSettings
)

var kindNames = map[Kind]string{
	KindLaunch:   "launch",
	KindTasks:    "tasks",
	KindSettings: "settings",
}

var kindFilenames = map[Kind]string{
	KindLaunch:   "launch.json",
	KindTasks:    "tasks.json",
	KindSettings: "settings.json",
}

// AllKinds returns every kind in default order: launch, tasks, settings.
func AllKinds() []Kind {
	return []Kind{KindLaunch, KindTasks, KindSettings}
}

// KindNames returns the flag names of all kinds in default order.
func KindNames() []string {
	kinds := AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// String returns the flag name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Filename returns the file written for the kind inside .vscode.
func (k Kind) Filename() string {
	return kindFilenames[k]
}

// Valid reports whether k is a defined kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts a flag value such as "tasks" to a Kind.
// Matching ignores case and surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownKind, "%q (valid: %s)", s, strings.Join(KindNames(), ", "))
}

// ParseKinds converts flag values to kinds, preserving order and duplicates.
// Values may themselves be comma-separated; empty segments are ignored.
func ParseKinds(values []string) ([]Kind, error) {
	var kinds []Kind
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			k, err := ParseKind(part)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}
