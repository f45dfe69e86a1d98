package types

import (
	"strconv"
)

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a TEXT value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

// String returns the text verbatim. Unlike MarshalJSON, no quoting is applied
// since BED columns are never quoted.
func (v TextValue) String() string {
	return string(v)
}

func (v TextValue) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}
