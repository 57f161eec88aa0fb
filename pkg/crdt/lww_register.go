package crdt

import "time"

// LWWRegister is a last-writer-wins register ordered by hybrid logical
// clocks: the write with the greatest timestamp wins, replica ID breaking
// ties. Replicas are identified by their string form so the register stays
// agnostic of the actor type the rest of a composite uses.
type LWWRegister[V comparable] struct {
	id  string
	Val V         `json:"value"`
	TS  Timestamp `json:"ts"`
}

// LWWRegisterDelta carries one written value and its timestamp.
type LWWRegisterDelta[V comparable] struct {
	Val V         `json:"value"`
	TS  Timestamp `json:"ts"`
}

func NewLWWRegister[V comparable](id string) *LWWRegister[V] {
	return &LWWRegister[V]{id: id}
}

// Write stores value under a fresh timestamp and returns the delta to ship
// to remote replicas.
func (r *LWWRegister[V]) Write(value V) LWWRegisterDelta[V] {
	r.TS = tick(r.TS, r.id, time.Now().UnixNano())
	r.Val = value
	return LWWRegisterDelta[V]{Val: value, TS: r.TS}
}

// Read returns the current value.
func (r *LWWRegister[V]) Read() V {
	return r.Val
}

// Merge keeps the state with the greater timestamp.
func (r *LWWRegister[V]) Merge(other *LWWRegister[V]) {
	if CompareHLC(r.TS, other.TS) == Lower {
		r.Val = other.Val
		r.TS = other.TS
	}
}

// ApplyDelta keeps the delta's value if its timestamp is greater. An older
// delta is a no-op, so redelivery and reordering are safe.
func (r *LWWRegister[V]) ApplyDelta(delta LWWRegisterDelta[V]) error {
	if CompareHLC(r.TS, delta.TS) == Lower {
		r.Val = delta.Val
		r.TS = delta.TS
	}
	return nil
}

// Clone returns an independent copy.
func (r *LWWRegister[V]) Clone() *LWWRegister[V] {
	clone := *r
	return &clone
}

// Equal compares the observable state: value and timestamp, not the local
// replica identity.
func (r *LWWRegister[V]) Equal(other *LWWRegister[V]) bool {
	return r.Val == other.Val && r.TS == other.TS
}
