package crdt

import (
	"maps"

	"golang.org/x/exp/constraints"
)

// GCounter is a grow-only counter: one monotonically increasing slot per
// actor, total value = sum over all slots.
type GCounter[A comparable, V constraints.Unsigned] struct {
	actor A
	P     map[A]V `json:"p"`
}

// GCounterDelta carries an actor's new running total, so applying it is a
// pointwise max: safe to deliver repeatedly and in any order.
type GCounterDelta[A comparable, V constraints.Unsigned] struct {
	Actor A `json:"actor"`
	Total V `json:"total"`
}

func NewGCounter[A comparable, V constraints.Unsigned](actor A) *GCounter[A, V] {
	return &GCounter[A, V]{
		actor: actor,
		P:     make(map[A]V),
	}
}

// Increment adds delta to the local actor's slot and returns the delta to
// ship to remote replicas.
func (c *GCounter[A, V]) Increment(delta V) GCounterDelta[A, V] {
	c.P[c.actor] += delta
	return GCounterDelta[A, V]{Actor: c.actor, Total: c.P[c.actor]}
}

// Value returns the counter total.
func (c *GCounter[A, V]) Value() V {
	var sum V
	for _, v := range c.P {
		sum += v
	}
	return sum
}

// Merge takes the per-actor max of both counters.
func (c *GCounter[A, V]) Merge(other *GCounter[A, V]) {
	for actor, val := range other.P {
		if cur, ok := c.P[actor]; !ok || val > cur {
			c.P[actor] = val
		}
	}
}

// ApplyDelta raises the delta's actor slot to the carried total. A stale
// delta is a no-op.
func (c *GCounter[A, V]) ApplyDelta(delta GCounterDelta[A, V]) error {
	if cur, ok := c.P[delta.Actor]; !ok || delta.Total > cur {
		c.P[delta.Actor] = delta.Total
	}
	return nil
}

// Clone returns an independent copy.
func (c *GCounter[A, V]) Clone() *GCounter[A, V] {
	return &GCounter[A, V]{
		actor: c.actor,
		P:     maps.Clone(c.P),
	}
}

// Equal compares lattice state; the local actor identity is not part of it.
func (c *GCounter[A, V]) Equal(other *GCounter[A, V]) bool {
	return maps.Equal(c.P, other.P)
}
