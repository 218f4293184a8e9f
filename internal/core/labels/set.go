package labels

import "sort"

// Set is a set of label names.
type Set map[string]struct{}

// NewSet creates a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// AddAll inserts every name of other into the set.
func (s Set) AddAll(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Remove deletes name from the set.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Sorted returns the names in lexical order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
