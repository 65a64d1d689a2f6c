package automata

import (
	"cmp"
	"slices"
)

// orderedSet is a set that remembers insertion order. Automata output must be
// deterministic, so states and alphabets are never kept in bare maps.
type orderedSet[T cmp.Ordered] struct {
	order []T
	index map[T]struct{}
}

func newOrderedSet[T cmp.Ordered](items ...T) *orderedSet[T] {
	s := &orderedSet[T]{index: make(map[T]struct{}, len(items))}
	for _, v := range items {
		s.add(v)
	}
	return s
}

// add inserts v, reporting whether it was not already present.
func (s *orderedSet[T]) add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *orderedSet[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet[T]) len() int { return len(s.order) }

// items returns the members in insertion order. The slice is a copy.
func (s *orderedSet[T]) items() []T {
	return slices.Clone(s.order)
}

// sorted returns the members in ascending order.
func (s *orderedSet[T]) sorted() []T {
	out := slices.Clone(s.order)
	slices.Sort(out)
	return out
}

func (s *orderedSet[T]) clone() *orderedSet[T] {
	return newOrderedSet(s.order...)
}

// equal reports set equality, ignoring insertion order.
func (s *orderedSet[T]) equal(o *orderedSet[T]) bool {
	if s.len() != o.len() {
		return false
	}
	for _, v := range s.order {
		if !o.has(v) {
			return false
		}
	}
	return true
}
