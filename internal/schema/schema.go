// Package schema describes the shape of BED records: an ordered list of typed fields.
// A Schema is validated once, when it is built, and is immutable afterwards, which
// allows it to be shared by any number of concurrent decoders.
package schema

import (
	"strconv"
	"strings"

	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// ErrInvalidSchema is returned when a schema definition is inconsistent.
var ErrInvalidSchema = errors.New("invalid schema")

// Field describes one column of a record.
type Field struct {
	// Name of the column. It can be empty.
	Name string
	Type types.Type
	// Schema of a nested record. Only set when Type is types.TypeRecord.
	Schema *Schema
}

// Text returns a text field.
func Text(name string) Field { return Field{Name: name, Type: types.TypeText} }

// Integer returns an integer field.
func Integer(name string) Field { return Field{Name: name, Type: types.TypeInteger} }

// Char returns a single character field.
func Char(name string) Field { return Field{Name: name, Type: types.TypeChar} }

// IntegerList returns a variable-length integer list field.
func IntegerList(name string) Field { return Field{Name: name, Type: types.TypeIntegerList} }

// Record returns a nested record field following sub.
func Record(name string, sub *Schema) Field {
	return Field{Name: name, Type: types.TypeRecord, Schema: sub}
}

// String returns the definition of the field, as understood by Parse.
func (f Field) String() string {
	var sb strings.Builder
	if f.Name != "" {
		sb.WriteString(f.Name)
		sb.WriteByte(':')
	}
	sb.WriteString(f.Type.String())
	if f.Type == types.TypeRecord && f.Schema != nil {
		sb.WriteByte('(')
		sb.WriteString(f.Schema.String())
		sb.WriteByte(')')
	}
	return sb.String()
}

// Schema is an ordered, fixed-arity list of fields.
type Schema struct {
	fields []Field
}

// New validates the given fields and returns a schema.
func New(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidSchema, "a schema must have at least one field")
	}

	names := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if !f.Type.IsValid() {
			return nil, errors.Wrapf(ErrInvalidSchema, "field %d: unsupported type %d", i, f.Type)
		}

		if f.Name != "" {
			if _, ok := names[f.Name]; ok {
				return nil, errors.Wrapf(ErrInvalidSchema, "field %d: duplicate field name %q", i, f.Name)
			}
			names[f.Name] = struct{}{}
		}

		if f.Type != types.TypeRecord {
			if f.Schema != nil {
				return nil, errors.Wrapf(ErrInvalidSchema, "field %d: only record fields can have a nested schema", i)
			}
			continue
		}

		if f.Schema == nil || f.Schema.Len() == 0 {
			return nil, errors.Wrapf(ErrInvalidSchema, "field %d: record field without nested schema", i)
		}

		// nested records use the comma as their only delimiter,
		// so they cannot contain other comma-terminated fields.
		for j, sf := range f.Schema.fields {
			if !sf.Type.IsScalar() {
				return nil, errors.Wrapf(ErrInvalidSchema, "field %d.%d: nested records only accept text, integer and char fields, got %s", i, j, sf.Type)
			}
		}
	}

	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Schema{fields: fs}, nil
}

// MustNew calls New and panics on error.
// It is meant to declare schemas as package-level variables.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of top-level fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Field returns the i-th field.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the list of fields.
func (s *Schema) Fields() []Field {
	fs := make([]Field, len(s.fields))
	copy(fs, s.fields)
	return fs
}

// Index returns the position of the field with the given name, or -1.
func (s *Schema) Index(name string) int {
	for i := range s.fields {
		if s.fields[i].Name == name {
			return i
		}
	}

	return -1
}

// FieldName returns the name of the i-th field, or "fieldN" if the field is unnamed.
func (s *Schema) FieldName(i int) string {
	if n := s.fields[i].Name; n != "" {
		return n
	}
	return "field" + strconv.Itoa(i)
}

// String returns the definition of the schema, as understood by Parse.
func (s *Schema) String() string {
	var sb strings.Builder
	for i, f := range s.fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}
