package set

import (
	"sort"

	"facette.io/natsort"
)

// StringSet is a set of plain strings. Unlike the generic Set it does not
// need a hash function or error returns, since Go map keys already give
// structural equality for strings.
type StringSet struct {
	elements map[string]struct{}
}

// NewStringSet creates a new StringSet containing the given elements.
func NewStringSet(elements ...string) *StringSet {
	s := &StringSet{
		elements: make(map[string]struct{}, len(elements)),
	}

	s.AddAll(elements...)

	return s
}

// AddAll adds multiple string elements to the set.
func (s *StringSet) AddAll(elements ...string) {
	for _, elem := range elements {
		s.Add(elem)
	}
}

// Add adds a single string element to the set.
func (s *StringSet) Add(element string) {
	s.elements[element] = struct{}{}
}

// Remove removes a string element from the set. Removing an element that
// is not present is a no-op.
func (s *StringSet) Remove(element string) {
	delete(s.elements, element)
}

// Contains checks if a string element exists in the set.
func (s *StringSet) Contains(element string) bool {
	_, ok := s.elements[element]

	return ok
}

// Size returns the number of elements in the set.
func (s *StringSet) Size() int {
	return len(s.elements)
}

// Entries returns all string elements in the set. The order is not guaranteed.
func (s *StringSet) Entries() []string {
	items := make([]string, 0, len(s.elements))
	for item := range s.elements {
		items = append(items, item)
	}

	return items
}

// SortedEntries returns all string elements in the set sorted alphabetically.
func (s *StringSet) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns all string elements in the set sorted using natural sort order.
// Natural sort treats numbers within strings numerically (e.g., "q2" comes before "q10").
func (s *StringSet) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}

// Union returns a new StringSet containing all elements from both sets.
func (s *StringSet) Union(other *StringSet) *StringSet {
	ns := NewStringSet(s.Entries()...)
	ns.AddAll(other.Entries()...)

	return ns
}

// Intersection returns a new StringSet containing only elements present in both sets.
func (s *StringSet) Intersection(other *StringSet) *StringSet {
	ns := NewStringSet()

	for item := range s.elements {
		if other.Contains(item) {
			ns.Add(item)
		}
	}

	return ns
}

// Clone returns a shallow copy of the set.
func (s *StringSet) Clone() *StringSet {
	return NewStringSet(s.Entries()...)
}
