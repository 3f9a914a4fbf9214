package labels

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/labelsync/pkg/errors"
)

// LoadTemplate reads a YAML label template from path. The template is a
// sequence of {name, color} entries; every entry is validated before the
// template is accepted.
func LoadTemplate(path string) ([]Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parseTemplate(data, path)
}

// ParseTemplate parses YAML template data. See LoadTemplate.
func ParseTemplate(data []byte) ([]Label, error) {
	return parseTemplate(data, "")
}

func parseTemplate(data []byte, path string) ([]Label, error) {
	var list []Label
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	for i, l := range list {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("template entry %d: %w", i, err)
		}
	}
	return list, nil
}

// Duplicates returns the names that appear more than once in list, in
// ascending order. Duplicate entries are legal; the last one wins when a
// Set is built.
func Duplicates(list []Label) []string {
	counts := make(map[string]int, len(list))
	for _, l := range list {
		counts[l.Name]++
	}
	var dupes []string
	for name, n := range counts {
		if n > 1 {
			dupes = append(dupes, name)
		}
	}
	sort.Strings(dupes)
	return dupes
}
