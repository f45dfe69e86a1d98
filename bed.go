package bed

import (
	"github.com/chaisql/bed/internal/header"
	"github.com/chaisql/bed/internal/row"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
)

type (
	// Schema describes the fields of a record.
	Schema = schema.Schema

	// Field is a single field of a schema.
	Field = schema.Field

	// Record is a decoded line.
	Record = row.Row

	// Header is a parsed track line.
	Header = header.Header

	// Value is the decoded value of a field.
	Value = types.Value
)

// Standard schemas.
var (
	BED3  = schema.BED3
	BED6  = schema.BED6
	BED12 = schema.BED12
)

// Text returns a text field.
func Text(name string) Field { return schema.Text(name) }

// Integer returns an integer field.
func Integer(name string) Field { return schema.Integer(name) }

// Char returns a single character field.
func Char(name string) Field { return schema.Char(name) }

// IntegerList returns a field holding a comma-terminated list of integers.
func IntegerList(name string) Field { return schema.IntegerList(name) }

// NestedRecord returns a field holding a comma-terminated group of scalar values.
func NestedRecord(name string, sub *Schema) Field { return schema.Record(name, sub) }

// NewSchema creates a schema from a list of fields.
func NewSchema(fields ...Field) (*Schema, error) {
	return schema.New(fields...)
}

// ParseSchema parses a schema definition such as "chrom:text,start:int,end:int".
func ParseSchema(def string) (*Schema, error) {
	return schema.Parse(def)
}

// Standard returns the schema made of the first n standard BED columns.
// n must be between 3 and 12.
func Standard(n int) (*Schema, error) {
	return schema.Standard(n)
}

// NewRecord creates a record from values whose types match s.
func NewRecord(s *Schema, values ...Value) (*Record, error) {
	return row.New(s, values...)
}

// Decode parses a single line following s.
func Decode(s *Schema, line string) (*Record, error) {
	return row.Decode(s, line)
}

// Encode returns the textual form of r, without trailing newline.
func Encode(r *Record) (string, error) {
	data, err := r.MarshalText()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ParseHeader parses a track line.
func ParseHeader(line string) (*Header, error) {
	return header.Parse(line)
}
