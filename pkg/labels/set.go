package labels

import "sort"

// Set indexes labels by name for constant-time lookups during planning.
type Set map[string]Label

// NewSet builds a Set from a slice of labels. When the same name appears
// more than once, the last entry wins.
func NewSet(list []Label) Set {
	set := make(Set, len(list))
	for _, l := range list {
		set[l.Name] = l
	}
	return set
}

// Contains reports whether a label with the given name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Get returns the label with the given name.
func (s Set) Get(name string) (Label, bool) {
	l, ok := s[name]
	return l, ok
}

// Names returns the label names in ascending order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Labels returns the labels ordered by name.
func (s Set) Labels() []Label {
	list := make([]Label, 0, len(s))
	for _, name := range s.Names() {
		list = append(list, s[name])
	}
	return list
}
