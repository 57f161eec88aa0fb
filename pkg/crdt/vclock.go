package crdt

import "maps"

// VClock is a vector clock: the greatest sequence number observed from each
// actor. It is itself a CRDT (pointwise max), usable as an ordinary composite
// field for callers that want causal bookkeeping replicated alongside their
// data. Its delta type is Dot.
type VClock[A comparable] struct {
	Counters map[A]uint64 `json:"counters"`
}

func NewVClock[A comparable]() *VClock[A] {
	return &VClock[A]{Counters: make(map[A]uint64)}
}

// Get returns the greatest sequence number observed from actor, zero if none.
func (c *VClock[A]) Get(actor A) uint64 {
	return c.Counters[actor]
}

// Witness records the dot and returns it, for chaining into a delta slot.
func (c *VClock[A]) Witness(dot Dot[A]) Dot[A] {
	if dot.Seq > c.Counters[dot.Actor] {
		c.Counters[dot.Actor] = dot.Seq
	}
	return dot
}

// Seen reports whether the dot is already covered by the clock.
func (c *VClock[A]) Seen(dot Dot[A]) bool {
	return c.Counters[dot.Actor] >= dot.Seq
}

// Merge takes the per-actor max of both clocks.
func (c *VClock[A]) Merge(other *VClock[A]) {
	for actor, seq := range other.Counters {
		if seq > c.Counters[actor] {
			c.Counters[actor] = seq
		}
	}
}

// ApplyDelta witnesses one dot. Re-applying is a no-op.
func (c *VClock[A]) ApplyDelta(dot Dot[A]) error {
	c.Witness(dot)
	return nil
}

// Clone returns an independent copy.
func (c *VClock[A]) Clone() *VClock[A] {
	return &VClock[A]{Counters: maps.Clone(c.Counters)}
}

// Equal reports whether both clocks cover the same history.
func (c *VClock[A]) Equal(other *VClock[A]) bool {
	return maps.Equal(c.Counters, other.Counters)
}
