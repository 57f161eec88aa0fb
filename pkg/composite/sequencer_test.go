package composite

import (
	"sync"
	"testing"

	"compositecrdt/pkg/crdt"
)

func TestSequencer_MonotonicFromOne(t *testing.T) {
	s := NewSequencer("a")

	for want := uint64(1); want <= 5; want++ {
		dot := s.Next()
		if dot.Actor != "a" {
			t.Fatalf("dot actor = %q, want %q", dot.Actor, "a")
		}
		if dot.Seq != want {
			t.Fatalf("dot seq = %d, want %d", dot.Seq, want)
		}
	}

	if s.Actor() != "a" {
		t.Errorf("Actor() = %q, want %q", s.Actor(), "a")
	}
}

func TestSequencer_ConcurrentDotsAreUnique(t *testing.T) {
	const n = 200

	s := NewSequencer("a")
	dots := make(chan crdt.Dot[string], n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dots <- s.Next()
		}()
	}
	wg.Wait()
	close(dots)

	seen := make(map[uint64]bool, n)
	for dot := range dots {
		if seen[dot.Seq] {
			t.Fatalf("duplicate sequence number %d", dot.Seq)
		}
		seen[dot.Seq] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d unique dots, want %d", len(seen), n)
	}
}
