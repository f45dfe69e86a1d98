package types

import (
	"strconv"
)

var _ Value = NewIntegerListValue(nil)

// IntegerListValue is a variable-length list of integers. Its textual form
// is comma-terminated: every element, including the last, is followed by a comma.
type IntegerListValue []int64

// NewIntegerListValue returns a LIST value.
func NewIntegerListValue(x []int64) IntegerListValue {
	return IntegerListValue(x)
}

func (v IntegerListValue) V() any {
	return []int64(v)
}

func (v IntegerListValue) Type() Type {
	return TypeIntegerList
}

func (v IntegerListValue) Len() int {
	return len(v)
}

func (v IntegerListValue) String() string {
	data, _ := v.MarshalText()
	return string(data)
}

func (v IntegerListValue) MarshalText() ([]byte, error) {
	return v.AppendText(nil), nil
}

// AppendText appends the comma-terminated form of the list to dst.
func (v IntegerListValue) AppendText(dst []byte) []byte {
	for _, x := range v {
		dst = strconv.AppendInt(dst, x, 10)
		dst = append(dst, ',')
	}
	return dst
}

func (v IntegerListValue) MarshalJSON() ([]byte, error) {
	dst := []byte{'['}
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, x, 10)
	}
	return append(dst, ']'), nil
}
