package crdt

import (
	"maps"

	"compositecrdt/pkg/structs"

	"golang.org/x/exp/constraints"
)

// PNCounter is a counter supporting both increment and decrement: two
// grow-only maps, positive and negative, one slot per actor.
type PNCounter[A comparable, V constraints.Integer] struct {
	actor A
	P     map[A]V `json:"p"` // positive increments
	N     map[A]V `json:"n"` // negative increments
}

// PNCounterDelta carries the actor's new running totals for both maps;
// applying it is a pointwise max.
type PNCounterDelta[A comparable, V constraints.Integer] struct {
	Actor A `json:"actor"`
	P     V `json:"p"`
	N     V `json:"n"`
}

func NewPNCounter[A comparable, V constraints.Integer](actor A) *PNCounter[A, V] {
	return &PNCounter[A, V]{
		actor: actor,
		P:     make(map[A]V),
		N:     make(map[A]V),
	}
}

// Increment adds delta to the local actor's positive slot.
func (c *PNCounter[A, V]) Increment(delta V) PNCounterDelta[A, V] {
	c.P[c.actor] += delta
	return PNCounterDelta[A, V]{Actor: c.actor, P: c.P[c.actor], N: c.N[c.actor]}
}

// Decrement adds delta to the local actor's negative slot.
func (c *PNCounter[A, V]) Decrement(delta V) PNCounterDelta[A, V] {
	c.N[c.actor] += delta
	return PNCounterDelta[A, V]{Actor: c.actor, P: c.P[c.actor], N: c.N[c.actor]}
}

// Value returns the counter total.
func (c *PNCounter[A, V]) Value() V {
	var sumP, sumN V
	for _, v := range c.P {
		sumP += v
	}
	for _, v := range c.N {
		sumN += v
	}
	return sumP - sumN
}

// Merge takes the per-actor max of both maps.
func (c *PNCounter[A, V]) Merge(other *PNCounter[A, V]) {
	mergeMax(c.P, other.P)
	mergeMax(c.N, other.N)
}

// ApplyDelta raises the delta's actor slots to the carried totals. A stale
// delta is a no-op.
func (c *PNCounter[A, V]) ApplyDelta(delta PNCounterDelta[A, V]) error {
	if cur, ok := c.P[delta.Actor]; !ok || delta.P > cur {
		c.P[delta.Actor] = delta.P
	}
	if cur, ok := c.N[delta.Actor]; !ok || delta.N > cur {
		c.N[delta.Actor] = delta.N
	}
	return nil
}

// Clone returns an independent copy.
func (c *PNCounter[A, V]) Clone() *PNCounter[A, V] {
	return &PNCounter[A, V]{
		actor: c.actor,
		P:     maps.Clone(c.P),
		N:     maps.Clone(c.N),
	}
}

// Equal compares lattice state; the local actor identity is not part of it.
func (c *PNCounter[A, V]) Equal(other *PNCounter[A, V]) bool {
	return maps.Equal(c.P, other.P) && maps.Equal(c.N, other.N)
}

// Actors returns every actor with a slot in either map.
func (c *PNCounter[A, V]) Actors() structs.Set[A] {
	actors := structs.NewSet[A]()
	for a := range c.P {
		actors.Add(a)
	}
	for a := range c.N {
		actors.Add(a)
	}
	return actors
}

func mergeMax[A comparable, V constraints.Integer](dst, src map[A]V) {
	for actor, val := range src {
		if cur, ok := dst[actor]; !ok || val > cur {
			dst[actor] = val
		}
	}
}
