package set

// OrderedStringSet is a set of plain strings that preserves insertion order.
// Iteration over Entries is deterministic, which matters for callers that
// want reproducible traversal order over the set's elements.
type OrderedStringSet struct {
	elements map[string]struct{}
	order    []string
}

// NewOrderedStringSet creates a new OrderedStringSet containing the given
// elements in the order they are provided.
func NewOrderedStringSet(elements ...string) *OrderedStringSet {
	s := &OrderedStringSet{
		elements: make(map[string]struct{}, len(elements)),
	}

	s.AddAll(elements...)

	return s
}

// AddAll adds multiple string elements to the set in order.
func (s *OrderedStringSet) AddAll(elements ...string) {
	for _, elem := range elements {
		s.Add(elem)
	}
}

// Add adds a single string element to the set. If the element is new it is
// appended to the end of the insertion order; if it already exists its
// position is unchanged.
func (s *OrderedStringSet) Add(element string) {
	if _, ok := s.elements[element]; ok {
		return
	}

	s.elements[element] = struct{}{}
	s.order = append(s.order, element)
}

// Contains checks if a string element exists in the set.
func (s *OrderedStringSet) Contains(element string) bool {
	_, ok := s.elements[element]

	return ok
}

// Size returns the number of elements in the set.
func (s *OrderedStringSet) Size() int {
	return len(s.order)
}

// Entries returns all elements in insertion order. The returned slice is a
// copy; modifying it does not affect the set.
func (s *OrderedStringSet) Entries() []string {
	items := make([]string, len(s.order))
	copy(items, s.order)

	return items
}

// Intersection returns a new OrderedStringSet containing only elements
// present in both sets. The insertion order of the receiver is preserved.
func (s *OrderedStringSet) Intersection(other *OrderedStringSet) *OrderedStringSet {
	ns := NewOrderedStringSet()

	for _, item := range s.order {
		if other.Contains(item) {
			ns.Add(item)
		}
	}

	return ns
}

// Union returns a new OrderedStringSet containing all elements from both
// sets. Elements of the receiver come first, in their insertion order,
// followed by the other set's elements that were not already present.
func (s *OrderedStringSet) Union(other *OrderedStringSet) *OrderedStringSet {
	ns := NewOrderedStringSet(s.Entries()...)
	ns.AddAll(other.Entries()...)

	return ns
}

// Clone returns a shallow copy of the set with the same insertion order.
func (s *OrderedStringSet) Clone() *OrderedStringSet {
	return NewOrderedStringSet(s.Entries()...)
}
