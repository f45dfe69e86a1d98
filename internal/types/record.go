package types

var _ Value = NewRecordValue()

// RecordValue is a nested record: a fixed-arity group of scalar values
// stored in a single column. Like lists, its textual form is comma-terminated.
type RecordValue []Value

// NewRecordValue returns a RECORD value.
func NewRecordValue(values ...Value) RecordValue {
	return RecordValue(values)
}

func (v RecordValue) V() any {
	return []Value(v)
}

func (v RecordValue) Type() Type {
	return TypeRecord
}

func (v RecordValue) Len() int {
	return len(v)
}

// Get returns the i-th value of the record.
func (v RecordValue) Get(i int) Value {
	return v[i]
}

func (v RecordValue) String() string {
	data, _ := v.MarshalText()
	return string(data)
}

func (v RecordValue) MarshalText() ([]byte, error) {
	var dst []byte
	for _, x := range v {
		text, err := x.MarshalText()
		if err != nil {
			return nil, err
		}
		dst = append(dst, text...)
		dst = append(dst, ',')
	}
	return dst, nil
}

func (v RecordValue) MarshalJSON() ([]byte, error) {
	dst := []byte{'['}
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		data, err := x.MarshalJSON()
		if err != nil {
			return nil, err
		}
		dst = append(dst, data...)
	}
	return append(dst, ']'), nil
}
