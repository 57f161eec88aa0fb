package crdt

import "testing"

func TestVClock_WitnessAndSeen(t *testing.T) {
	c := NewVClock[string]()

	if c.Seen(Dot[string]{Actor: "a", Seq: 1}) {
		t.Fatal("empty clock reports dot as seen")
	}

	c.Witness(Dot[string]{Actor: "a", Seq: 2})

	if !c.Seen(Dot[string]{Actor: "a", Seq: 1}) {
		t.Error("seq 1 should be covered by seq 2")
	}
	if !c.Seen(Dot[string]{Actor: "a", Seq: 2}) {
		t.Error("seq 2 should be covered")
	}
	if c.Seen(Dot[string]{Actor: "a", Seq: 3}) {
		t.Error("seq 3 should not be covered")
	}
	if c.Seen(Dot[string]{Actor: "b", Seq: 1}) {
		t.Error("other actor should not be covered")
	}
	if got := c.Get("a"); got != 2 {
		t.Errorf("Get(a)=%d, want 2", got)
	}
}

func TestVClock_WitnessOldDotIsNoop(t *testing.T) {
	c := NewVClock[string]()
	c.Witness(Dot[string]{Actor: "a", Seq: 5})
	c.Witness(Dot[string]{Actor: "a", Seq: 3})

	if got := c.Get("a"); got != 5 {
		t.Fatalf("Get(a)=%d, want 5", got)
	}
}

func TestVClock_Merge(t *testing.T) {
	a := NewVClock[string]()
	a.Witness(Dot[string]{Actor: "a", Seq: 3})
	a.Witness(Dot[string]{Actor: "b", Seq: 1})

	b := NewVClock[string]()
	b.Witness(Dot[string]{Actor: "b", Seq: 4})
	b.Witness(Dot[string]{Actor: "c", Seq: 2})

	a.Merge(b)

	wants := map[string]uint64{"a": 3, "b": 4, "c": 2}
	for actor, seq := range wants {
		if got := a.Get(actor); got != seq {
			t.Errorf("Get(%s)=%d, want %d", actor, got, seq)
		}
	}
}

func TestVClock_ApplyDelta(t *testing.T) {
	c := NewVClock[string]()
	if err := c.ApplyDelta(Dot[string]{Actor: "a", Seq: 1}); err != nil {
		t.Fatalf("ApplyDelta() error = %v", err)
	}
	if err := c.ApplyDelta(Dot[string]{Actor: "a", Seq: 1}); err != nil {
		t.Fatalf("ApplyDelta() error = %v", err)
	}
	if got := c.Get("a"); got != 1 {
		t.Fatalf("Get(a)=%d, want 1", got)
	}
}

func TestVClock_CloneIsIndependent(t *testing.T) {
	c := NewVClock[string]()
	c.Witness(Dot[string]{Actor: "a", Seq: 1})

	clone := c.Clone()
	clone.Witness(Dot[string]{Actor: "a", Seq: 9})

	if got := c.Get("a"); got != 1 {
		t.Fatalf("source mutated through clone: Get(a)=%d, want 1", got)
	}
	if !c.Equal(c.Clone()) {
		t.Fatal("clone not equal to source")
	}
}
