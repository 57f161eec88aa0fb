package crdt

import (
	"fmt"
	"time"
)

// Comparison results.
const (
	Lower   = -1
	Equal   = 0
	Greater = 1
)

// Timestamp is a hybrid logical clock reading: physical wall time in
// nanoseconds, a logical counter for events within the same nanosecond, and
// the writing replica's identity for tie-breaks. The zero Timestamp orders
// before every real one.
type Timestamp struct {
	WallTime int64  `json:"wall_time"` // unix nano
	Lamport  int64  `json:"lamport"`
	ID       string `json:"id"`
}

func (t Timestamp) Before(other Timestamp) bool { return CompareHLC(t, other) == Lower }
func (t Timestamp) After(other Timestamp) bool  { return CompareHLC(t, other) == Greater }

func (t Timestamp) String() string {
	return fmt.Sprintf("(%s, L=%d, id=%s)",
		time.Unix(0, t.WallTime).UTC().Format(time.RFC3339Nano),
		t.Lamport, t.ID)
}

// CompareHLC orders two timestamps: wall time, then lamport, then ID.
func CompareHLC(a, b Timestamp) int {
	if a.WallTime < b.WallTime {
		return Lower
	}
	if a.WallTime > b.WallTime {
		return Greater
	}
	if a.Lamport < b.Lamport {
		return Lower
	}
	if a.Lamport > b.Lamport {
		return Greater
	}
	if a.ID < b.ID {
		return Lower
	}
	if a.ID > b.ID {
		return Greater
	}
	return Equal
}

// tick advances last to a timestamp strictly after it for the given replica,
// using now when the wall clock has moved forward and the lamport counter
// otherwise.
func tick(last Timestamp, id string, now int64) Timestamp {
	if now > last.WallTime {
		return Timestamp{WallTime: now, Lamport: 0, ID: id}
	}
	return Timestamp{WallTime: last.WallTime, Lamport: last.Lamport + 1, ID: id}
}
