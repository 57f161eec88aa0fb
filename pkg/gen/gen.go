// Package gen transliterates a validated schema into the source of a
// composite CRDT type: one state struct with a slot per field, one operation
// struct bundling a dot with an optional delta per field, and the pointwise
// Merge / selective Apply that delegate every decision to the field types.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"compositecrdt/pkg/schema"
)

type fieldView struct {
	GoName string
	State  string
	Delta  string
	Ctor   string
}

type view struct {
	Package   string
	Name      string
	ActorType string
	Imports   []string
	Fields    []fieldView
}

// Generate emits gofmt-formatted source for the schema's composite type.
// The schema must already be validated; an unknown kind or actor here is a
// programming error and is reported as one.
func Generate(s *schema.Schema) ([]byte, error) {
	actor, ok := actors[s.Actor]
	if !ok {
		return nil, fmt.Errorf("actor %q: %w", s.Actor, schema.ErrUnknownActor)
	}

	v := view{
		Package:   s.Package,
		Name:      s.Name,
		ActorType: actor.typ,
		Imports:   actor.imports,
	}

	for i := range s.Fields {
		f := &s.Fields[i]
		kind, ok := kinds[f.Kind]
		if !ok {
			return nil, fmt.Errorf("field %q kind %q: %w", f.Name, f.Kind, schema.ErrUnknownKind)
		}
		v.Fields = append(v.Fields, fieldView{
			GoName: f.GoName(),
			State:  kind.state(f, actor),
			Delta:  kind.delta(f, actor),
			Ctor:   kind.ctor(f, actor),
		})
	}

	var buf bytes.Buffer
	if err := compositeTmpl.Execute(&buf, &v); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

var compositeTmpl = template.Must(template.New("composite").Parse(
	`// Code generated by crdtgen. DO NOT EDIT.

package {{.Package}}

import (
	"compositecrdt/pkg/composite"
	"compositecrdt/pkg/crdt"
{{if .Imports}}
{{- range .Imports}}
	"{{.}}"
{{- end}}
{{end -}}
)

// {{.Name}} is a composite replicated value: one independent CRDT per field.
// Instances are not safe for concurrent mutation.
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{.State}}
{{- end}}
}

// {{.Name}}Op bundles what one causal event changed: a dot plus an optional
// delta per field. A nil slot means the field was untouched by the event.
// The dot is carried for the caller's causal bookkeeping; Apply does not
// interpret it.
type {{.Name}}Op struct {
	Dot crdt.Dot[{{.ActorType}}]
{{- range .Fields}}
	{{.GoName}} *{{.Delta}}
{{- end}}
}

// New{{.Name}} returns a value with every field default-constructed for the
// given actor.
func New{{.Name}}(actor {{.ActorType}}) *{{.Name}} {
	return &{{.Name}}{
{{- range .Fields}}
		{{.GoName}}: {{.Ctor}},
{{- end}}
	}
}

// Clone returns an independent deep copy.
func (v *{{.Name}}) Clone() *{{.Name}} {
	return &{{.Name}}{
{{- range .Fields}}
		{{.GoName}}: v.{{.GoName}}.Clone(),
{{- end}}
	}
}

// Merge joins other into v, field by field. Each field joins only its own
// lattice, so the composite merge inherits commutativity, associativity and
// idempotence from the fields.
func (v *{{.Name}}) Merge(other *{{.Name}}) {
{{- range .Fields}}
	v.{{.GoName}}.Merge(other.{{.GoName}})
{{- end}}
}

// Apply dispatches each present delta to its field and skips nil slots.
// The first field error is returned unchanged. An all-nil op is a no-op.
func (v *{{.Name}}) Apply(op {{.Name}}Op) error {
{{- range .Fields}}
	if err := composite.ApplyField(v.{{.GoName}}, op.{{.GoName}}); err != nil {
		return err
	}
{{- end}}
	return nil
}

// Equal compares observable state, field by field.
func (v *{{.Name}}) Equal(other *{{.Name}}) bool {
	return true{{range .Fields}} &&
		v.{{.GoName}}.Equal(other.{{.GoName}}){{end}}
}
`))
