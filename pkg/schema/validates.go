package schema

import (
	"fmt"
	"go/token"

	"compositecrdt/pkg/structs"
)

func (s *Schema) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if !token.IsIdentifier(s.Name) {
		return fmt.Errorf("composite name %q: %w", s.Name, ErrBadIdentifier)
	}
	if s.Package == "" {
		return ErrMissingPackage
	}
	if !token.IsIdentifier(s.Package) {
		return fmt.Errorf("package %q: %w", s.Package, ErrBadIdentifier)
	}
	if !knownActors.Contains(s.Actor) {
		return fmt.Errorf("actor %q: %w", s.Actor, ErrUnknownActor)
	}
	if len(s.Fields) == 0 {
		return ErrNoFields
	}

	seen := structs.NewSet[string]()
	for i := range s.Fields {
		f := &s.Fields[i]
		if err := f.Validate(); err != nil {
			return err
		}
		if seen.Contains(f.GoName()) {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen.Add(f.GoName())
	}

	return nil
}

func (f *Field) Validate() error {
	if f.Name == "" {
		return ErrMissingFieldName
	}
	if !token.IsIdentifier(f.GoName()) {
		return fmt.Errorf("field %q: %w", f.Name, ErrBadIdentifier)
	}
	if reservedNames.Contains(f.GoName()) {
		return fmt.Errorf("field %q: %w", f.Name, ErrReservedName)
	}
	if !knownKinds.Contains(f.Kind) {
		return fmt.Errorf("field %q kind %q: %w", f.Name, f.Kind, ErrUnknownKind)
	}

	switch f.Kind {
	case KindGCounter:
		if !knownUnsigned.Contains(f.Value) {
			return fmt.Errorf("field %q value %q: %w", f.Name, f.Value, ErrUnknownType)
		}
	case KindPNCounter:
		if !knownInteger.Contains(f.Value) {
			return fmt.Errorf("field %q value %q: %w", f.Name, f.Value, ErrUnknownType)
		}
	case KindGSet:
		if !knownScalars.Contains(f.Elem) {
			return fmt.Errorf("field %q elem %q: %w", f.Name, f.Elem, ErrUnknownType)
		}
	case KindSetMap:
		if !knownScalars.Contains(f.Key) {
			return fmt.Errorf("field %q key %q: %w", f.Name, f.Key, ErrUnknownType)
		}
		if !knownScalars.Contains(f.Elem) {
			return fmt.Errorf("field %q elem %q: %w", f.Name, f.Elem, ErrUnknownType)
		}
	case KindLWW:
		if !knownScalars.Contains(f.Elem) {
			return fmt.Errorf("field %q elem %q: %w", f.Name, f.Elem, ErrUnknownType)
		}
	case KindVClock:
		// actor-typed, no parameters
	}

	return nil
}
