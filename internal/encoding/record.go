package encoding

import (
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// DecodeRecord splits line into fields and decodes them against s.
// Fields beyond the arity of the schema are ignored.
func DecodeRecord(s *schema.Schema, line string) ([]types.Value, error) {
	return decodeValues(s, topLevel.split(line), topLevel)
}

func decodeValues(s *schema.Schema, fields []string, l level) ([]types.Value, error) {
	if len(fields) < s.Len() {
		if l.nested {
			return nil, malformed("expected %d parts, got %d", s.Len(), len(fields))
		}
		return nil, malformed("expected %d fields, got %d", s.Len(), len(fields))
	}

	values := make([]types.Value, s.Len())
	for i := range values {
		v, err := decodeField(s.Field(i), fields[i])
		if err != nil {
			return nil, wrapPosition(err, s, i, l)
		}
		values[i] = v
	}

	return values, nil
}

// EncodeRecord returns the textual form of values, following s.
func EncodeRecord(s *schema.Schema, values []types.Value) (string, error) {
	dst, err := AppendRecord(nil, s, values)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// AppendRecord appends the textual form of values to dst. Fields are separated
// by a single tab, without trailing tab.
func AppendRecord(dst []byte, s *schema.Schema, values []types.Value) ([]byte, error) {
	return appendValues(dst, s, values, topLevel)
}

func appendValues(dst []byte, s *schema.Schema, values []types.Value, l level) ([]byte, error) {
	if len(values) != s.Len() {
		return nil, malformed("expected %d values, got %d", s.Len(), len(values))
	}

	var err error
	for i, v := range values {
		if !l.nested && i > 0 {
			dst = append(dst, FieldSeparator)
		}

		dst, err = appendField(dst, s.Field(i), v, l)
		if err != nil {
			return nil, wrapPosition(err, s, i, l)
		}

		if l.nested {
			dst = append(dst, PartTerminator)
		}
	}

	return dst, nil
}

func wrapPosition(err error, s *schema.Schema, i int, l level) error {
	if l.nested {
		return errors.Wrapf(err, "part %d", i)
	}
	return errors.Wrapf(err, "field %d (%s)", i, fieldName(s, i))
}
