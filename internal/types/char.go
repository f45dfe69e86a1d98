package types

import (
	"strconv"
)

var _ Value = NewCharValue('.')

// CharValue holds a single character, such as the strand of a feature.
// The zero value represents a missing character and cannot be encoded.
type CharValue rune

// NewCharValue returns a CHAR value.
func NewCharValue(r rune) CharValue {
	return CharValue(r)
}

func (v CharValue) V() any {
	return rune(v)
}

func (v CharValue) Type() Type {
	return TypeChar
}

func (v CharValue) IsZero() bool {
	return v == 0
}

func (v CharValue) String() string {
	if v == 0 {
		return ""
	}
	return string(rune(v))
}

func (v CharValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v CharValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}
