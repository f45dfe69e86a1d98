package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrFieldTypeMismatch is returned when the text of a field, or a value assigned
	// to a field, does not satisfy the grammar of the declared type.
	ErrFieldTypeMismatch = errors.New("field type mismatch")
)

// Type represents the type of a BED field.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeText
	TypeInteger
	TypeChar
	TypeIntegerList
	TypeRecord
)

func (t Type) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeChar:
		return "char"
	case TypeIntegerList:
		return "list"
	case TypeRecord:
		return "record"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsValid reports whether t is one of the concrete field types.
func (t Type) IsValid() bool {
	return t >= TypeText && t <= TypeRecord
}

// IsScalar returns true if t is encoded as a single token:
// a text, an integer or a char.
func (t Type) IsScalar() bool {
	return t == TypeText || t == TypeInteger || t == TypeChar
}

// IsComposite returns true if t is made of comma-terminated parts.
func (t Type) IsComposite() bool {
	return t == TypeIntegerList || t == TypeRecord
}

// HasFixedArity returns true if the number of parts of a composite
// type is known from the schema. Only nested records have a fixed arity.
func (t Type) HasFixedArity() bool {
	return t == TypeRecord
}

// Value is the decoded form of a single field.
type Value interface {
	Type() Type
	V() any
	String() string
	MarshalText() ([]byte, error)
	MarshalJSON() ([]byte, error)
}
