// Package embedded carries the starter label templates shipped with the
// binary and written out by the init command.
package embedded

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// FS embeds the starter label templates at build time.
//
//go:embed templates/*.yaml
var FS embed.FS

// Template returns the named starter template.
func Template(name string) ([]byte, error) {
	return FS.ReadFile("templates/" + name + ".yaml")
}

// Templates returns the available starter template names, sorted.
func Templates() []string {
	entries, err := fs.ReadDir(FS, "templates")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
