package crdt

import "testing"

func TestPNCounter_BasicOperations(t *testing.T) {
	type op struct {
		inc bool
		d   int64
	}

	tests := []struct {
		name  string
		ops   []op
		value int64
	}{
		{
			name:  "single increment",
			ops:   []op{{inc: true, d: 5}},
			value: 5,
		},
		{
			name:  "single decrement",
			ops:   []op{{inc: false, d: 3}},
			value: -3,
		},
		{
			name:  "inc then dec",
			ops:   []op{{inc: true, d: 10}, {inc: false, d: 4}},
			value: 6,
		},
		{
			name:  "multiple ops",
			ops:   []op{{inc: true, d: 2}, {inc: true, d: 3}, {inc: false, d: 1}, {inc: false, d: 4}},
			value: 0,
		},
		{
			name:  "large values",
			ops:   []op{{inc: true, d: 1000000}, {inc: false, d: 999999}},
			value: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewPNCounter[string, int64]("a")
			for _, o := range tc.ops {
				if o.inc {
					c.Increment(o.d)
				} else {
					c.Decrement(o.d)
				}
			}
			if got := c.Value(); got != tc.value {
				t.Fatalf("expected Value()=%d, got %d", tc.value, got)
			}
		})
	}
}

func TestPNCounter_Merge(t *testing.T) {
	tests := []struct {
		name     string
		prepareA func() *PNCounter[string, int64]
		prepareB func() *PNCounter[string, int64]
		want     int64
	}{
		{
			name: "merge disjoint actors",
			prepareA: func() *PNCounter[string, int64] {
				a := NewPNCounter[string, int64]("a")
				a.Increment(3)
				a.Decrement(1)
				return a
			},
			prepareB: func() *PNCounter[string, int64] {
				b := NewPNCounter[string, int64]("b")
				b.Increment(4)
				b.Decrement(2)
				return b
			},
			want: 4,
		},
		{
			name: "merge same actor takes max per map",
			prepareA: func() *PNCounter[string, int64] {
				a := NewPNCounter[string, int64]("a")
				a.Increment(2)
				a.Decrement(1)
				return a
			},
			prepareB: func() *PNCounter[string, int64] {
				b := NewPNCounter[string, int64]("a")
				b.Increment(5)
				b.Decrement(3)
				return b
			},
			want: 2,
		},
		{
			name: "merge empty counter",
			prepareA: func() *PNCounter[string, int64] {
				a := NewPNCounter[string, int64]("a")
				a.Increment(5)
				return a
			},
			prepareB: func() *PNCounter[string, int64] {
				return NewPNCounter[string, int64]("b")
			},
			want: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.prepareA()
			b := tc.prepareB()
			a.Merge(b)
			if got := a.Value(); got != tc.want {
				t.Fatalf("after merge expected Value()=%d, got %d", tc.want, got)
			}
		})
	}
}

func TestPNCounter_DeltaCarriesBothTotals(t *testing.T) {
	c := NewPNCounter[string, int64]("a")
	c.Increment(5)
	d := c.Decrement(2)

	if d.P != 5 || d.N != 2 {
		t.Fatalf("delta totals = (P=%d, N=%d), want (5, 2)", d.P, d.N)
	}

	remote := NewPNCounter[string, int64]("b")
	if err := remote.ApplyDelta(d); err != nil {
		t.Fatalf("ApplyDelta() error = %v", err)
	}
	if got := remote.Value(); got != 3 {
		t.Fatalf("remote Value()=%d, want 3", got)
	}

	// redelivery changes nothing
	if err := remote.ApplyDelta(d); err != nil {
		t.Fatalf("ApplyDelta() error = %v", err)
	}
	if got := remote.Value(); got != 3 {
		t.Fatalf("after redelivery Value()=%d, want 3", got)
	}
}

func TestPNCounter_Actors(t *testing.T) {
	a := NewPNCounter[string, int64]("a")
	a.Increment(1)

	b := NewPNCounter[string, int64]("b")
	b.Decrement(2)

	a.Merge(b)

	actors := a.Actors()
	if actors.Size() != 2 || !actors.Contains("a") || !actors.Contains("b") {
		t.Fatalf("Actors() = %v, want {a b}", actors.Slice())
	}
}

func TestPNCounter_CloneIsIndependent(t *testing.T) {
	c := NewPNCounter[string, int64]("a")
	c.Increment(4)

	clone := c.Clone()
	clone.Decrement(1)

	if c.Value() != 4 {
		t.Errorf("source mutated through clone: Value()=%d, want 4", c.Value())
	}
	if clone.Value() != 3 {
		t.Errorf("clone Value()=%d, want 3", clone.Value())
	}
}
