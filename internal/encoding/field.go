package encoding

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

func decodeField(f schema.Field, text string) (types.Value, error) {
	if f.Type.IsComposite() {
		return decodeParts(f, text)
	}

	switch f.Type {
	case types.TypeText:
		if strings.ContainsAny(text, "\r\n") {
			return nil, mismatch("cannot parse %q as text: line break", text)
		}
		return types.NewTextValue(text), nil
	case types.TypeInteger:
		return decodeInteger(text)
	case types.TypeChar:
		return decodeChar(text)
	}

	return nil, mismatch("unsupported type %s", f.Type)
}

func decodeInteger(text string) (types.Value, error) {
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, mismatch("cannot parse %q as integer", text)
	}
	return types.NewIntegerValue(x), nil
}

// decodeChar returns the first character of text.
// Any remaining character is ignored.
func decodeChar(text string) (types.Value, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return nil, mismatch("cannot parse empty text as char")
	}
	if r == utf8.RuneError {
		return nil, mismatch("cannot parse %q as char: invalid UTF-8", text)
	}
	if r == '\r' || r == '\n' {
		return nil, mismatch("cannot parse %q as char: line break", text)
	}
	return types.NewCharValue(r), nil
}

// decodeParts decodes lists and nested records, which share the same
// comma-terminated layout. Nested records have the arity of their schema,
// lists hold any number of integers.
func decodeParts(f schema.Field, text string) (types.Value, error) {
	parts := SplitParts(text)

	if f.Type.HasFixedArity() {
		values, err := decodeValues(f.Schema, parts, nestedLevel)
		if err != nil {
			return nil, err
		}
		return types.NewRecordValue(values...), nil
	}

	if len(parts) == 0 {
		return nil, mismatch("cannot parse %q as list: no elements", text)
	}
	l := make(types.IntegerListValue, len(parts))
	for i, p := range parts {
		v, err := decodeInteger(p)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		l[i] = types.AsInt64(v)
	}
	return l, nil
}

func appendField(dst []byte, f schema.Field, v types.Value, l level) ([]byte, error) {
	if v == nil {
		return nil, mismatch("missing %s value", f.Type)
	}
	if v.Type() != f.Type {
		return nil, mismatch("expected %s value, got %s", f.Type, v.Type())
	}

	if f.Type.IsComposite() {
		return appendParts(dst, f, v)
	}

	switch f.Type {
	case types.TypeText:
		s := types.AsString(v)
		if !l.validText(s) {
			return nil, mismatch("text %q cannot be encoded as a field", s)
		}
		return append(dst, s...), nil
	case types.TypeInteger:
		return strconv.AppendInt(dst, types.AsInt64(v), 10), nil
	case types.TypeChar:
		c := types.AsChar(v)
		if c == 0 || !l.validText(string(c)) {
			return nil, mismatch("char %q cannot be encoded as a field", c)
		}
		return utf8.AppendRune(dst, c), nil
	}

	return nil, mismatch("unsupported type %s", f.Type)
}

// appendParts appends every part of a list or nested record, each followed by a comma.
func appendParts(dst []byte, f schema.Field, v types.Value) ([]byte, error) {
	if f.Type.HasFixedArity() {
		return appendValues(dst, f.Schema, types.AsRecord(v), nestedLevel)
	}

	list := types.NewIntegerListValue(types.AsIntegerList(v))
	if len(list) == 0 {
		return nil, mismatch("empty list cannot be encoded as a field")
	}
	return list.AppendText(dst), nil
}
