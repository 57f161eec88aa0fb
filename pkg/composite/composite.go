// Package composite is the runtime side of generated composite CRDTs.
//
// A generated composite value is the product lattice of its fields: Merge is
// the independent pointwise join of every field's own lattice, so the
// commutativity, associativity and idempotence of the composite merge follow
// directly from the same laws holding for each field. Nothing here may
// introduce field-order-dependent side effects into a merge.
//
// A generated composite operation bundles, under one Dot, an optional delta
// per field. Apply dispatches each present delta to its field and skips the
// rest; the dot is stored and forwarded for the caller's own causal
// bookkeeping, never interpreted. An all-nil operation is a legal no-op.
//
// Delivery guarantees are the caller's: this layer does not deduplicate
// repeated delivery and does not order concurrent deliveries. Redelivered or
// reordered operations are safe exactly when every touched field's own
// ApplyDelta is idempotent and commutative. Sequencer and Frontier cover the
// caller-side bookkeeping for dots.
package composite

import "compositecrdt/pkg/crdt"

// ApplyField dispatches one optional field delta: nil means the field was
// untouched by the event and is left exactly as is. A field error is
// returned unchanged.
func ApplyField[D any, F crdt.DeltaApplier[D]](field F, delta *D) error {
	if delta == nil {
		return nil
	}
	return field.ApplyDelta(*delta)
}

// Some wraps a field delta for an operation slot.
func Some[D any](delta D) *D {
	return &delta
}
