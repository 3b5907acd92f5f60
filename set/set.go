// Package set provides collections of unique elements keyed on structural
// equality. The generic Set hashes element contents and resolves collisions
// by comparing the colliding values; StringSet and OrderedStringSet are
// specializations for plain string elements.
package set

import (
	"errors"

	"github.com/amp-labs/amp-automata/compare"
	"github.com/amp-labs/amp-automata/hashing"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the element type has implemented the Hashable
// and Comparable interfaces. If a collision is detected, an
// error is returned.
type Set[T Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewSet[T Collectable[T]](hash hashing.HashFunc) *Set[T] {
	return &Set[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

// AddAll adds multiple elements to the set. Returns an error if any element
// causes a hash collision or if hashing fails.
func (s *Set[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single element to the set. Returns an error if the element
// causes a hash collision or if hashing fails. If the element already exists
// in the set, no error is returned.
func (s *Set[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

// Remove removes an element from the set. Returns an error if hashing fails.
// If the element is not in the set, no error is returned.
func (s *Set[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

// Contains checks if an element exists in the set. Returns true if the element
// exists, false otherwise. Returns an error if hashing fails or a collision is detected.
func (s *Set[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return true, nil
		}

		return true, ErrHashCollision
	}

	return false, nil
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return len(s.elements)
}

// Entries returns all elements in the set as a slice. The order is not guaranteed.
func (s *Set[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}
