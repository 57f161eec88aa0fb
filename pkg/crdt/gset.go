package crdt

import "compositecrdt/pkg/structs"

// GSet is a grow-only set: elements can be added, never removed.
type GSet[E comparable] struct {
	Elems structs.Set[E] `json:"elems"`
}

// GSetDelta carries elements added by one event.
type GSetDelta[E comparable] struct {
	Elems []E `json:"elems"`
}

func NewGSet[E comparable]() *GSet[E] {
	return &GSet[E]{Elems: structs.NewSet[E]()}
}

// Add inserts the elements and returns the delta to ship to remote replicas.
func (s *GSet[E]) Add(elems ...E) GSetDelta[E] {
	for _, e := range elems {
		s.Elems.Add(e)
	}
	return GSetDelta[E]{Elems: elems}
}

// Contains reports whether the element is present.
func (s *GSet[E]) Contains(elem E) bool {
	return s.Elems.Contains(elem)
}

// Len returns the number of elements.
func (s *GSet[E]) Len() int {
	return s.Elems.Size()
}

// Slice returns all elements in unspecified order.
func (s *GSet[E]) Slice() []E {
	return s.Elems.Slice()
}

// Merge unions the other set into the receiver.
func (s *GSet[E]) Merge(other *GSet[E]) {
	s.Elems.Merge(other.Elems)
}

// ApplyDelta inserts the delta's elements. Re-applying is a no-op.
func (s *GSet[E]) ApplyDelta(delta GSetDelta[E]) error {
	for _, e := range delta.Elems {
		s.Elems.Add(e)
	}
	return nil
}

// Clone returns an independent copy.
func (s *GSet[E]) Clone() *GSet[E] {
	return &GSet[E]{Elems: s.Elems.Clone()}
}

// Equal reports whether both sets hold the same elements.
func (s *GSet[E]) Equal(other *GSet[E]) bool {
	return s.Elems.Equal(other.Elems)
}
