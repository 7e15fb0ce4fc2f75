package lint

import "sort"

// stringSet is an unordered set of strings
type stringSet map[string]struct{}

func newStringSet(values []string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) equal(other stringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

func (s stringSet) intersect(other stringSet) stringSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	result := make(stringSet)
	for v := range small {
		if _, ok := large[v]; ok {
			result[v] = struct{}{}
		}
	}
	return result
}

// sorted returns the members in ascending order
func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// sortedUnique returns a sorted copy of values without duplicates
func sortedUnique(values []string) []string {
	return newStringSet(values).sorted()
}
