// SPDX-License-Identifier: MPL-2.0

package app

import (
	"maps"
	"slices"
)

// Set is an unordered set of package names.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	s.Add(names...)
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts names and returns how many were new.
func (s Set) Add(names ...string) int {
	origLen := len(s)
	for _, name := range names {
		s[name] = struct{}{}
	}
	return len(s) - origLen
}

// Subtract removes every member of other and returns how many were removed.
func (s Set) Subtract(other Set) int {
	origLen := len(s)
	for name := range other {
		delete(s, name)
	}
	return origLen - len(s)
}

// Sorted returns the members in lexicographic order. It never returns nil.
func (s Set) Sorted() []string {
	names := slices.Sorted(maps.Keys(s))
	if names == nil {
		return []string{}
	}
	return names
}
