// Package row holds decoded BED records.
package row

import (
	"github.com/chaisql/bed/internal/encoding"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// ErrFieldNotFound is returned when looking up a field name that is not part of the schema.
var ErrFieldNotFound = errors.New("field not found")

// Row is a decoded record: one value per field of its schema.
type Row struct {
	schema *schema.Schema
	values []types.Value
}

// New creates a row from the given values. The number and the types
// of the values must match the schema.
func New(s *schema.Schema, values ...types.Value) (*Row, error) {
	if len(values) != s.Len() {
		return nil, errors.Wrapf(encoding.ErrMalformedRecord, "expected %d values, got %d", s.Len(), len(values))
	}

	for i, v := range values {
		if err := checkValue(s.Field(i), v); err != nil {
			return nil, errors.Wrapf(err, "field %d (%s)", i, s.FieldName(i))
		}
	}

	vs := make([]types.Value, len(values))
	copy(vs, values)
	return &Row{schema: s, values: vs}, nil
}

// Decode parses a line following s.
func Decode(s *schema.Schema, line string) (*Row, error) {
	values, err := encoding.DecodeRecord(s, line)
	if err != nil {
		return nil, err
	}

	return &Row{schema: s, values: values}, nil
}

// Schema returns the schema of the row.
func (r *Row) Schema() *schema.Schema {
	return r.schema
}

// Len returns the number of fields.
func (r *Row) Len() int {
	return len(r.values)
}

// Get returns the value of the i-th field.
func (r *Row) Get(i int) types.Value {
	return r.values[i]
}

// GetByName returns the value of the field with the given name.
// If the field does not exist, it returns ErrFieldNotFound.
func (r *Row) GetByName(name string) (types.Value, error) {
	i := r.schema.Index(name)
	if i < 0 {
		return nil, errors.Wrapf(ErrFieldNotFound, "%s not found", name)
	}

	return r.values[i], nil
}

// Set replaces the value of the i-th field.
// The value must have the type declared by the schema.
func (r *Row) Set(i int, v types.Value) error {
	if i < 0 || i >= len(r.values) {
		return errors.Wrapf(ErrFieldNotFound, "field %d out of range", i)
	}
	if err := checkValue(r.schema.Field(i), v); err != nil {
		return errors.Wrapf(err, "field %d (%s)", i, r.schema.FieldName(i))
	}

	r.values[i] = v
	return nil
}

// SetByName replaces the value of the field with the given name.
func (r *Row) SetByName(name string, v types.Value) error {
	i := r.schema.Index(name)
	if i < 0 {
		return errors.Wrapf(ErrFieldNotFound, "%s not found", name)
	}

	return r.Set(i, v)
}

// Values returns a copy of the values of the row.
func (r *Row) Values() []types.Value {
	vs := make([]types.Value, len(r.values))
	copy(vs, r.values)
	return vs
}

// Iterate goes through all the fields of the row and calls the given function
// by passing each one of them. If the given function returns an error, the iteration stops.
func (r *Row) Iterate(fn func(f schema.Field, v types.Value) error) error {
	for i, v := range r.values {
		if err := fn(r.schema.Field(i), v); err != nil {
			return err
		}
	}

	return nil
}

// AppendText appends the textual form of the row to dst.
func (r *Row) AppendText(dst []byte) ([]byte, error) {
	return encoding.AppendRecord(dst, r.schema, r.values)
}

func (r *Row) MarshalText() ([]byte, error) {
	return r.AppendText(nil)
}

// String returns the textual form of the row, or an empty string if it cannot be encoded.
func (r *Row) String() string {
	data, _ := r.MarshalText()
	return string(data)
}

// Clone returns a copy of the row sharing the same schema.
func (r *Row) Clone() *Row {
	return &Row{schema: r.schema, values: r.Values()}
}

func checkValue(f schema.Field, v types.Value) error {
	if v == nil {
		return errors.Wrapf(types.ErrFieldTypeMismatch, "missing %s value", f.Type)
	}
	if v.Type() != f.Type {
		return errors.Wrapf(types.ErrFieldTypeMismatch, "expected %s value, got %s", f.Type, v.Type())
	}
	if f.Type != types.TypeRecord {
		return nil
	}

	rv := types.AsRecord(v)
	if len(rv) != f.Schema.Len() {
		return errors.Wrapf(encoding.ErrMalformedRecord, "expected %d parts, got %d", f.Schema.Len(), len(rv))
	}
	for i, sv := range rv {
		if err := checkValue(f.Schema.Field(i), sv); err != nil {
			return errors.Wrapf(err, "part %d", i)
		}
	}

	return nil
}
