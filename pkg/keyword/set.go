package keyword

import "sort"

// Set is a set of extracted keywords.
type Set map[string]struct{}

// Add inserts keyword into the set.
func (s Set) Add(keyword string) {
	s[keyword] = struct{}{}
}

// Contains reports whether keyword is in the set.
func (s Set) Contains(keyword string) bool {
	_, ok := s[keyword]
	return ok
}

// Len returns the number of keywords in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keywords in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
