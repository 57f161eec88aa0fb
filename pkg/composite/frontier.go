package composite

import (
	"sync"

	"compositecrdt/pkg/crdt"
)

// Frontier tracks the greatest dot observed from each actor. Callers that
// want at-most-once apply of operation bundles check Observe before applying;
// the engine itself never deduplicates. Safe for concurrent use.
//
// Observe assumes dots from one actor arrive in sequence order; a gap is
// recorded as if the skipped dots had been seen. Callers needing exact
// per-dot accounting under out-of-order delivery should keep their own log.
type Frontier[A comparable] struct {
	mu   sync.Mutex
	seen map[A]uint64
}

func NewFrontier[A comparable]() *Frontier[A] {
	return &Frontier[A]{seen: make(map[A]uint64)}
}

// Observe records the dot and reports whether it was new.
func (f *Frontier[A]) Observe(dot crdt.Dot[A]) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen[dot.Actor] >= dot.Seq {
		return false
	}
	f.seen[dot.Actor] = dot.Seq
	return true
}

// Seen reports whether the dot is already covered, without recording it.
func (f *Frontier[A]) Seen(dot crdt.Dot[A]) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[dot.Actor] >= dot.Seq
}

// Latest returns the greatest sequence number observed from actor, zero if
// none.
func (f *Frontier[A]) Latest(actor A) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[actor]
}
