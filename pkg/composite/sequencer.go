package composite

import (
	"sync/atomic"

	"compositecrdt/pkg/crdt"
)

// Sequencer allocates the per-actor monotonically increasing dots a caller
// tags operation bundles with. Safe for concurrent use.
type Sequencer[A comparable] struct {
	actor A
	seq   atomic.Uint64
}

func NewSequencer[A comparable](actor A) *Sequencer[A] {
	return &Sequencer[A]{actor: actor}
}

// Actor returns the identity this sequencer allocates for.
func (s *Sequencer[A]) Actor() A {
	return s.actor
}

// Next returns the next dot. The first dot has sequence number 1.
func (s *Sequencer[A]) Next() crdt.Dot[A] {
	return crdt.Dot[A]{Actor: s.actor, Seq: s.seq.Add(1)}
}
