// Package labels defines the label data model shared by the planner,
// the executor, and the remote label sources, along with YAML template
// loading and validation.
package labels

import (
	"fmt"
	"strings"

	"github.com/agentstation/labelsync/pkg/errors"
)

// Label is a single issue label. Name is the identity and is compared
// case-sensitively. Color is a 6 digit hex code without the leading '#'
// and is compared case-insensitively; the original casing is preserved.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// String returns the label in "name: color" form.
func (l Label) String() string {
	return fmt.Sprintf("%s: %s", l.Name, l.Color)
}

// SameColor reports whether the label's color matches the other label's
// color, ignoring case.
func (l Label) SameColor(other Label) bool {
	return strings.EqualFold(l.Color, other.Color)
}

// Validate checks that the label has a non-empty name and a well-formed
// 6 digit hex color.
func (l Label) Validate() error {
	if l.Name == "" {
		return errors.NewValidationError("name", l.Name, "cannot be empty")
	}
	if !validColor(l.Color) {
		return errors.NewValidationError("color", l.Color, "must be 6 hex digits without '#'")
	}
	return nil
}

// validColor reports whether s is exactly 6 hex digits.
func validColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
