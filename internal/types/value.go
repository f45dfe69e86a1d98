package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if !ok {
		return v.V().(string)
	}

	return string(tv)
}

func AsInt64(v Value) int64 {
	iv, ok := v.(IntegerValue)
	if !ok {
		return v.V().(int64)
	}

	return int64(iv)
}

func AsChar(v Value) rune {
	cv, ok := v.(CharValue)
	if !ok {
		return v.V().(rune)
	}

	return rune(cv)
}

func AsIntegerList(v Value) []int64 {
	lv, ok := v.(IntegerListValue)
	if !ok {
		return v.V().([]int64)
	}

	return lv
}

func AsRecord(v Value) RecordValue {
	rv, ok := v.(RecordValue)
	if !ok {
		return RecordValue(v.V().([]Value))
	}

	return rv
}

// AsIntegers converts an integer list, or a nested record made of integers,
// to a slice of T. It panics if v holds any other kind of value.
func AsIntegers[T constraints.Integer](v Value) []T {
	switch v.Type() {
	case TypeIntegerList:
		l := AsIntegerList(v)
		out := make([]T, len(l))
		for i, x := range l {
			out[i] = T(x)
		}
		return out
	case TypeRecord:
		r := AsRecord(v)
		out := make([]T, len(r))
		for i, x := range r {
			out[i] = T(AsInt64(x))
		}
		return out
	}

	panic(fmt.Sprintf("cannot convert %s value to integers", v.Type()))
}

// NewIntegerListOf returns a LIST value built from any integer slice.
func NewIntegerListOf[T constraints.Integer](x []T) IntegerListValue {
	l := make(IntegerListValue, len(x))
	for i := range x {
		l[i] = int64(x[i])
	}
	return l
}

// NewValue creates a value whose type is infered from x.
func NewValue(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return NewTextValue(v), nil
	case rune:
		return NewCharValue(v), nil
	case byte:
		return NewCharValue(rune(v)), nil
	case int:
		return NewIntegerValue(int64(v)), nil
	case int64:
		return NewIntegerValue(v), nil
	case uint32:
		return NewIntegerValue(int64(v)), nil
	case uint16:
		return NewIntegerValue(int64(v)), nil
	case []int64:
		return NewIntegerListValue(v), nil
	case []int:
		return NewIntegerListOf(v), nil
	case []uint32:
		return NewIntegerListOf(v), nil
	case []Value:
		return NewRecordValue(v...), nil
	}

	return nil, errors.Errorf("unsupported type %T", x)
}

// Equal reports whether a and b hold the same type and the same data.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Type() {
	case TypeText:
		return AsString(a) == AsString(b)
	case TypeInteger:
		return AsInt64(a) == AsInt64(b)
	case TypeChar:
		return AsChar(a) == AsChar(b)
	case TypeIntegerList:
		la, lb := AsIntegerList(a), AsIntegerList(b)
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if la[i] != lb[i] {
				return false
			}
		}
		return true
	case TypeRecord:
		ra, rb := AsRecord(a), AsRecord(b)
		if len(ra) != len(rb) {
			return false
		}
		for i := range ra {
			if !Equal(ra[i], rb[i]) {
				return false
			}
		}
		return true
	}

	return false
}
