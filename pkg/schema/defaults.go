package schema

import (
	"strings"

	"compositecrdt/pkg/structs"
)

// Field kinds a schema may declare. Every kind satisfies both replication
// capabilities: a state merge and a delta apply.
const (
	KindGCounter  = "gcounter"
	KindPNCounter = "pncounter"
	KindGSet      = "gset"
	KindSetMap    = "setmap"
	KindLWW       = "lww"
	KindVClock    = "vclock"
)

// Actor identity kinds. One actor kind is shared by every field and by the
// operation dot.
const (
	ActorString = "string"
	ActorUUID   = "uuid"
)

var knownKinds = structs.NewSet(
	KindGCounter, KindPNCounter, KindGSet, KindSetMap, KindLWW, KindVClock,
)

var knownActors = structs.NewSet(ActorString, ActorUUID)

// Exported names the generated composite claims for itself: the op's dot
// slot and the value's methods. A field whose Go name lands on one of these
// would emit source that cannot compile.
var reservedNames = structs.NewSet("Dot", "Clone", "Merge", "Apply", "Equal")

// Scalar Go types allowed for set elements, map keys and register values.
var knownScalars = structs.NewSet(
	"string", "bool",
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
)

// Counter value types.
var knownUnsigned = structs.NewSet("uint", "uint8", "uint16", "uint32", "uint64")
var knownInteger = structs.NewSet(
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
)

var defaultField = Field{
	Key:   "string",
	Elem:  "string",
	Value: "uint64",
}

func (s *Schema) PopulateDefaults() {
	if s.Actor == "" {
		s.Actor = ActorString
	}

	if s.Package == "" {
		s.Package = strings.ToLower(s.Name)
	}

	for i := range s.Fields {
		s.Fields[i].PopulateDefaults()
	}
}

func (f *Field) PopulateDefaults() {
	switch f.Kind {
	case KindGCounter:
		if f.Value == "" {
			f.Value = defaultField.Value
		}
	case KindPNCounter:
		if f.Value == "" {
			f.Value = "int64"
		}
	case KindGSet:
		if f.Elem == "" {
			f.Elem = defaultField.Elem
		}
	case KindSetMap:
		if f.Key == "" {
			f.Key = defaultField.Key
		}
		if f.Elem == "" {
			f.Elem = defaultField.Elem
		}
	case KindLWW:
		if f.Elem == "" {
			f.Elem = defaultField.Elem
		}
	}
}
