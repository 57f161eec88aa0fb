package structs

import (
	"iter"
	"maps"
)

type empty = struct{}

// Set is a plain hash set for values of type T.
type Set[T comparable] map[T]empty

// NewSet builds a set from the given values.
func NewSet[T comparable](values ...T) Set[T] {
	res := make(Set[T])
	for _, v := range values {
		res[v] = empty{}
	}
	return res
}

// Add inserts a value.
func (s Set[T]) Add(value T) {
	s[value] = empty{}
}

// Remove deletes a value.
func (s Set[T]) Remove(value T) {
	delete(s, value)
}

// Contains reports whether the value is present.
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// Size returns the number of elements.
func (s Set[T]) Size() int {
	return len(s)
}

// Slice returns all elements in unspecified order.
func (s Set[T]) Slice() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return values
}

func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear removes every element.
func (s Set[T]) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// Clone returns an independent copy.
func (s Set[T]) Clone() Set[T] {
	clone := NewSet[T]()
	for v := range s {
		clone[v] = struct{}{}
	}
	return clone
}

// Merge adds every element of other to s in place.
func (s Set[T]) Merge(other Set[T]) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Union returns a new set with the elements of both sets.
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := s.Clone()
	for v := range other {
		result[v] = struct{}{}
	}
	return result
}

// Intersect returns the intersection of the two sets.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	result := NewSet[T]()
	for v := range s {
		if _, ok := other[v]; ok {
			result[v] = struct{}{}
		}
	}
	return result
}

// Difference returns the elements present in s but not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := NewSet[T]()
	for v := range s {
		if _, ok := other[v]; !ok {
			result[v] = struct{}{}
		}
	}
	return result
}

// IsSubsetOf reports whether every element of s is in other.
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s, other)
}
