// Package schema describes a composite CRDT at generation time: an ordered
// list of named fields, each backed by a known replicated kind, all sharing
// one actor identity type. Schemas are read from YAML, defaulted, and
// validated before any code is generated; a schema that fails validation
// produces no composite type.
package schema

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is one composite type definition.
type Schema struct {
	Package string  `yaml:"package"`
	Name    string  `yaml:"name"`
	Actor   string  `yaml:"actor"`
	Fields  []Field `yaml:"fields"`
}

// Field is one named slot of the composite. Kind selects the replicated
// type backing the slot; the remaining parameters depend on the kind.
type Field struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Key   string `yaml:"key"`   // setmap key type
	Elem  string `yaml:"elem"`  // gset/setmap element type, lww value type
	Value string `yaml:"value"` // counter value type
}

// Read loads a schema file, populates defaults and validates it.
func Read(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	s.PopulateDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// GoName returns the exported Go identifier for the field: snake_case schema
// names become PascalCase.
func (f *Field) GoName() string {
	var b strings.Builder
	for _, part := range strings.Split(f.Name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
