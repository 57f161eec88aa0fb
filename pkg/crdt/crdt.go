// Package crdt holds the capability contracts a replicated field type must
// satisfy, plus a small library of conflict-free replicated data types that
// satisfy them: grow-only and PN counters, a grow-only set, a grow-only map
// of sets, a last-writer-wins register and a vector clock.
//
// State types are plain values with no internal locking: a single writer at a
// time is assumed for any one instance, exactly as for any shared mutable
// aggregate. Merge, ApplyDelta and the mutators never block and never touch
// the network or disk.
package crdt

// Mergeable is the state-based (CvRDT) capability: Merge joins the full state
// of another replica into the receiver. It must be commutative, associative
// and idempotent over the type's own state lattice.
type Mergeable[S any] interface {
	// Merge full state from another replica.
	Merge(other S)
}

// DeltaApplier is the operation-based (CmRDT) capability: a delta type D plus
// an apply that incorporates one delta into local state. Whether repeated or
// reordered delivery of the same delta is safe is part of each type's own
// contract; nothing at this layer deduplicates.
type DeltaApplier[D any] interface {
	// ApplyDelta incorporates a single delta. Errors are the field's own;
	// callers propagate them unchanged.
	ApplyDelta(delta D) error
}

// Cloner produces an independent deep copy. Composite values have value
// semantics, so every field type must be cloneable.
type Cloner[S any] interface {
	Clone() S
}

// Replicated is what generated composite types require of each field:
// both capabilities plus deep copy.
type Replicated[S, D any] interface {
	Mergeable[S]
	DeltaApplier[D]
	Cloner[S]
}

// Dot identifies one event from one replica: an actor identity plus a
// per-actor monotonically increasing sequence number.
type Dot[A comparable] struct {
	Actor A      `json:"actor"`
	Seq   uint64 `json:"seq"`
}

// Every shipped field kind satisfies the full replication contract the
// generator assumes.
var (
	_ Replicated[*GCounter[string, uint64], GCounterDelta[string, uint64]] = (*GCounter[string, uint64])(nil)
	_ Replicated[*PNCounter[string, int64], PNCounterDelta[string, int64]] = (*PNCounter[string, int64])(nil)
	_ Replicated[*GSet[string], GSetDelta[string]]                         = (*GSet[string])(nil)
	_ Replicated[*SetMap[string, string], SetMapDelta[string, string]]     = (*SetMap[string, string])(nil)
	_ Replicated[*LWWRegister[string], LWWRegisterDelta[string]]           = (*LWWRegister[string])(nil)
	_ Replicated[*VClock[string], Dot[string]]                             = (*VClock[string])(nil)
)
