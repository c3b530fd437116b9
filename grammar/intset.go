package grammar

import (
	"sort"
	"strconv"
	"strings"
)

// IntSet is a small set of integers, generalized from the teacher toolkit's
// KeySet[E] (internal/util/set.go) from string keys to the integer symbol
// and item ids this package works with throughout.
type IntSet map[int]struct{}

// NewIntSet returns a new IntSet containing the given elements.
func NewIntSet(of ...int) IntSet {
	s := make(IntSet, len(of))
	for _, v := range of {
		s[v] = struct{}{}
	}
	return s
}

// Add adds v to the set. If v is already present, no effect occurs.
func (s IntSet) Add(v int) {
	s[v] = struct{}{}
}

// AddAll adds every element of o to s.
func (s IntSet) AddAll(o IntSet) (grew bool) {
	for v := range o {
		if _, ok := s[v]; !ok {
			s[v] = struct{}{}
			grew = true
		}
	}
	return grew
}

// Has returns whether v is a member of s.
func (s IntSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Remove removes v from s. If v is not present, no effect occurs.
func (s IntSet) Remove(v int) {
	delete(s, v)
}

// Sorted returns the elements of s in ascending order.
func (s IntSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Key returns a stable string representation of s suitable for use as a map
// key when deduplicating sets structurally, e.g. canonical-collection state
// dedup.
func (s IntSet) Key() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Equal returns whether s and o contain exactly the same elements.
func (s IntSet) Equal(o IntSet) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if _, ok := o[v]; !ok {
			return false
		}
	}
	return true
}
