package gen

import (
	"fmt"

	"compositecrdt/pkg/schema"
)

// actorSpec resolves a schema actor kind to the Go type used for dots and
// per-actor state, plus the expression giving its string form for types that
// identify replicas by string (the LWW register).
type actorSpec struct {
	typ     string
	id      string
	imports []string
}

var actors = map[string]actorSpec{
	schema.ActorString: {typ: "string", id: "actor"},
	schema.ActorUUID: {
		typ:     "uuid.UUID",
		id:      "actor.String()",
		imports: []string{"github.com/google/uuid"},
	},
}

// kindSpec transliterates one field kind: state type, delta type, and the
// default-constructor expression used by the generated constructor.
type kindSpec struct {
	state func(f *schema.Field, a actorSpec) string
	delta func(f *schema.Field, a actorSpec) string
	ctor  func(f *schema.Field, a actorSpec) string
}

var kinds = map[string]kindSpec{
	schema.KindGCounter: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.GCounter[%s, %s]", a.typ, f.Value)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.GCounterDelta[%s, %s]", a.typ, f.Value)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewGCounter[%s, %s](actor)", a.typ, f.Value)
		},
	},
	schema.KindPNCounter: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.PNCounter[%s, %s]", a.typ, f.Value)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.PNCounterDelta[%s, %s]", a.typ, f.Value)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewPNCounter[%s, %s](actor)", a.typ, f.Value)
		},
	},
	schema.KindGSet: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.GSet[%s]", f.Elem)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.GSetDelta[%s]", f.Elem)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewGSet[%s]()", f.Elem)
		},
	},
	schema.KindSetMap: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.SetMap[%s, %s]", f.Key, f.Elem)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.SetMapDelta[%s, %s]", f.Key, f.Elem)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewSetMap[%s, %s]()", f.Key, f.Elem)
		},
	},
	schema.KindLWW: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.LWWRegister[%s]", f.Elem)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.LWWRegisterDelta[%s]", f.Elem)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewLWWRegister[%s](%s)", f.Elem, a.id)
		},
	},
	schema.KindVClock: {
		state: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("*crdt.VClock[%s]", a.typ)
		},
		delta: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.Dot[%s]", a.typ)
		},
		ctor: func(f *schema.Field, a actorSpec) string {
			return fmt.Sprintf("crdt.NewVClock[%s]()", a.typ)
		},
	},
}
