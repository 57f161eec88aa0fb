package schema

import "errors"

var ErrMissingName = errors.New("missing composite name")
var ErrMissingPackage = errors.New("missing package name")
var ErrNoFields = errors.New("schema has no fields")
var ErrMissingFieldName = errors.New("missing field name")
var ErrBadIdentifier = errors.New("not a valid identifier")
var ErrDuplicateField = errors.New("duplicate field name")
var ErrReservedName = errors.New("reserved field name")
var ErrUnknownKind = errors.New("unknown field kind")
var ErrUnknownActor = errors.New("unknown actor kind")
var ErrUnknownType = errors.New("unknown type parameter")
