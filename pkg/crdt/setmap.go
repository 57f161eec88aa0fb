package crdt

import "compositecrdt/pkg/structs"

// SetMap is a grow-only map from keys to grow-only sets: keys and elements
// can be added, never removed. Merging joins the sets of shared keys.
type SetMap[K, E comparable] struct {
	Entries map[K]structs.Set[E] `json:"entries"`
}

// SetMapDelta carries elements added under one key by one event.
type SetMapDelta[K, E comparable] struct {
	Key   K   `json:"key"`
	Elems []E `json:"elems"`
}

func NewSetMap[K, E comparable]() *SetMap[K, E] {
	return &SetMap[K, E]{Entries: make(map[K]structs.Set[E])}
}

// Add inserts the elements under key and returns the delta to ship to
// remote replicas.
func (m *SetMap[K, E]) Add(key K, elems ...E) SetMapDelta[K, E] {
	set, ok := m.Entries[key]
	if !ok {
		set = structs.NewSet[E]()
		m.Entries[key] = set
	}
	for _, e := range elems {
		set.Add(e)
	}
	return SetMapDelta[K, E]{Key: key, Elems: elems}
}

// Contains reports whether elem is present under key.
func (m *SetMap[K, E]) Contains(key K, elem E) bool {
	set, ok := m.Entries[key]
	return ok && set.Contains(elem)
}

// Get returns the elements under key in unspecified order.
func (m *SetMap[K, E]) Get(key K) []E {
	set, ok := m.Entries[key]
	if !ok {
		return nil
	}
	return set.Slice()
}

// Len returns the number of keys.
func (m *SetMap[K, E]) Len() int {
	return len(m.Entries)
}

// Merge unions the other map into the receiver, key by key.
func (m *SetMap[K, E]) Merge(other *SetMap[K, E]) {
	for key, set := range other.Entries {
		cur, ok := m.Entries[key]
		if !ok {
			m.Entries[key] = set.Clone()
			continue
		}
		cur.Merge(set)
	}
}

// ApplyDelta inserts the delta's elements under its key. Re-applying is a
// no-op.
func (m *SetMap[K, E]) ApplyDelta(delta SetMapDelta[K, E]) error {
	set, ok := m.Entries[delta.Key]
	if !ok {
		set = structs.NewSet[E]()
		m.Entries[delta.Key] = set
	}
	for _, e := range delta.Elems {
		set.Add(e)
	}
	return nil
}

// Clone returns an independent copy.
func (m *SetMap[K, E]) Clone() *SetMap[K, E] {
	entries := make(map[K]structs.Set[E], len(m.Entries))
	for key, set := range m.Entries {
		entries[key] = set.Clone()
	}
	return &SetMap[K, E]{Entries: entries}
}

// Equal reports whether both maps hold the same keys and elements.
func (m *SetMap[K, E]) Equal(other *SetMap[K, E]) bool {
	if len(m.Entries) != len(other.Entries) {
		return false
	}
	for key, set := range m.Entries {
		o, ok := other.Entries[key]
		if !ok || !set.Equal(o) {
			return false
		}
	}
	return true
}
