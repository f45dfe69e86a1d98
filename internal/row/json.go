package row

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/chaisql/bed/internal/encoding"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// MarshalJSON encodes a row to a json object keyed by field name.
// Lists and nested records are encoded as arrays.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, v := range r.values {
		if i > 0 {
			buf.WriteString(", ")
		}

		buf.WriteString(strconv.Quote(r.schema.FieldName(i)))
		buf.WriteString(": ")

		data, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ParseJSON creates a row from a json object produced by MarshalJSON.
// Keys that are not part of the schema are ignored.
func ParseJSON(s *schema.Schema, data []byte) (*Row, error) {
	values := make([]types.Value, s.Len())
	for i := range values {
		name := s.FieldName(i)
		value, dataType, _, err := jsonparser.Get(data, name)
		if dataType == jsonparser.NotExist {
			return nil, errors.Wrapf(encoding.ErrMalformedRecord, "missing field %q", name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", name)
		}

		values[i], err = parseJSONValue(s.Field(i), dataType, value)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", name)
		}
	}

	return &Row{schema: s, values: values}, nil
}

func parseJSONValue(f schema.Field, dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch f.Type {
	case types.TypeText:
		if dataType != jsonparser.String {
			return nil, jsonMismatch(f, dataType)
		}
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case types.TypeInteger:
		if dataType != jsonparser.Number {
			return nil, jsonMismatch(f, dataType)
		}
		x, err := jsonparser.ParseInt(data)
		if err != nil {
			return nil, errors.Wrapf(types.ErrFieldTypeMismatch, "cannot parse %s as integer", data)
		}
		return types.NewIntegerValue(x), nil
	case types.TypeChar:
		if dataType != jsonparser.String {
			return nil, jsonMismatch(f, dataType)
		}
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		c, size := utf8.DecodeRuneInString(s)
		if size == 0 || c == utf8.RuneError {
			return nil, errors.Wrapf(types.ErrFieldTypeMismatch, "cannot parse %q as char", s)
		}
		return types.NewCharValue(c), nil
	case types.TypeIntegerList:
		if dataType != jsonparser.Array {
			return nil, jsonMismatch(f, dataType)
		}
		var l types.IntegerListValue
		err := eachElement(data, func(i int, dt jsonparser.ValueType, value []byte) error {
			v, err := parseJSONValue(schema.Integer(""), dt, value)
			if err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
			l = append(l, types.AsInt64(v))
			return nil
		})
		if err != nil {
			return nil, err
		}
		return l, nil
	case types.TypeRecord:
		if dataType != jsonparser.Array {
			return nil, jsonMismatch(f, dataType)
		}
		var rv types.RecordValue
		err := eachElement(data, func(i int, dt jsonparser.ValueType, value []byte) error {
			if i >= f.Schema.Len() {
				return nil
			}
			v, err := parseJSONValue(f.Schema.Field(i), dt, value)
			if err != nil {
				return errors.Wrapf(err, "part %d", i)
			}
			rv = append(rv, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if len(rv) < f.Schema.Len() {
			return nil, errors.Wrapf(encoding.ErrMalformedRecord, "expected %d parts, got %d", f.Schema.Len(), len(rv))
		}
		return rv, nil
	}

	return nil, errors.Errorf("unsupported type %s", f.Type)
}

// eachElement calls fn for every element of a json array
// and returns the first error encountered.
func eachElement(data []byte, fn func(i int, dataType jsonparser.ValueType, value []byte) error) error {
	var i int
	var fnErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if fnErr != nil {
			return
		}
		if err != nil {
			fnErr = err
			return
		}
		fnErr = fn(i, dataType, value)
		i++
	})
	if fnErr != nil {
		return fnErr
	}
	return err
}

func jsonMismatch(f schema.Field, dataType jsonparser.ValueType) error {
	return errors.Wrapf(types.ErrFieldTypeMismatch, "expected %s value, got json %s", f.Type, dataType)
}
