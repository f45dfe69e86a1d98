package types_test

import (
	"encoding/json"
	"testing"

	"github.com/chaisql/bed/internal/types"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		tp   types.Type
		want string
	}{
		{types.TypeAny, "any"},
		{types.TypeText, "text"},
		{types.TypeInteger, "integer"},
		{types.TypeChar, "char"},
		{types.TypeIntegerList, "list"},
		{types.TypeRecord, "record"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.tp.String())
	}

	require.Panics(t, func() { _ = types.Type(42).String() })
}

func TestTypePredicates(t *testing.T) {
	require.False(t, types.TypeAny.IsValid())
	require.False(t, types.Type(42).IsValid())

	for _, tp := range []types.Type{types.TypeText, types.TypeInteger, types.TypeChar} {
		require.True(t, tp.IsValid())
		require.True(t, tp.IsScalar())
		require.False(t, tp.IsComposite())
		require.False(t, tp.HasFixedArity())
	}

	require.True(t, types.TypeIntegerList.IsComposite())
	require.False(t, types.TypeIntegerList.HasFixedArity())
	require.True(t, types.TypeRecord.IsComposite())
	require.True(t, types.TypeRecord.HasFixedArity())
}

func TestValueEncoding(t *testing.T) {
	tests := []struct {
		name     string
		v        types.Value
		text     string
		json     string
		expected types.Type
	}{
		{"text", types.NewTextValue("chr1"), "chr1", `"chr1"`, types.TypeText},
		{"integer", types.NewIntegerValue(-10), "-10", `-10`, types.TypeInteger},
		{"char", types.NewCharValue('+'), "+", `"+"`, types.TypeChar},
		{"list", types.NewIntegerListValue([]int64{354, 109, 1189}), "354,109,1189,", `[354,109,1189]`, types.TypeIntegerList},
		{"record", types.NewRecordValue(types.NewIntegerValue(255), types.NewTextValue("a"), types.NewCharValue('-')), "255,a,-,", `[255,"a","-"]`, types.TypeRecord},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.v.Type())
			require.Equal(t, test.text, test.v.String())

			data, err := test.v.MarshalText()
			require.NoError(t, err)
			require.Equal(t, test.text, string(data))

			data, err = json.Marshal(test.v)
			require.NoError(t, err)
			require.JSONEq(t, test.json, string(data))
		})
	}
}

func TestCharValue(t *testing.T) {
	require.True(t, types.NewCharValue(0).IsZero())
	require.Equal(t, "", types.NewCharValue(0).String())
	require.Equal(t, "é", types.NewCharValue('é').String())
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		in   any
		want types.Value
	}{
		{"chr1", types.NewTextValue("chr1")},
		{'+', types.NewCharValue('+')},
		{byte('-'), types.NewCharValue('-')},
		{10, types.NewIntegerValue(10)},
		{int64(10), types.NewIntegerValue(10)},
		{uint32(10), types.NewIntegerValue(10)},
		{uint16(10), types.NewIntegerValue(10)},
		{[]int64{1, 2}, types.NewIntegerListValue([]int64{1, 2})},
		{[]int{1, 2}, types.NewIntegerListValue([]int64{1, 2})},
		{[]uint32{1, 2}, types.NewIntegerListValue([]int64{1, 2})},
		{[]types.Value{types.NewIntegerValue(1)}, types.NewRecordValue(types.NewIntegerValue(1))},
		{types.NewTextValue("x"), types.NewTextValue("x")},
	}

	for _, test := range tests {
		got, err := types.NewValue(test.in)
		require.NoError(t, err)
		require.Equal(t, test.want, got)
	}

	_, err := types.NewValue(1.5)
	require.Error(t, err)
}

func TestAsIntegers(t *testing.T) {
	l := types.NewIntegerListOf([]uint32{0, 739, 1347})
	require.Equal(t, []int64{0, 739, 1347}, types.AsIntegerList(l))
	require.Equal(t, []uint32{0, 739, 1347}, types.AsIntegers[uint32](l))

	r := types.NewRecordValue(types.NewIntegerValue(255), types.NewIntegerValue(0), types.NewIntegerValue(0))
	require.Equal(t, []uint8{255, 0, 0}, types.AsIntegers[uint8](r))

	require.Panics(t, func() { types.AsIntegers[int](types.NewTextValue("a")) })
}

func TestEqual(t *testing.T) {
	l := types.NewIntegerListValue([]int64{1, 2})
	r := types.NewRecordValue(types.NewIntegerValue(1), types.NewIntegerValue(2))

	require.True(t, types.Equal(l, types.NewIntegerListValue([]int64{1, 2})))
	require.False(t, types.Equal(l, types.NewIntegerListValue([]int64{1})))
	require.False(t, types.Equal(l, r))
	require.True(t, types.Equal(r, types.NewRecordValue(types.NewIntegerValue(1), types.NewIntegerValue(2))))
	require.False(t, types.Equal(r, types.NewRecordValue(types.NewIntegerValue(1), types.NewIntegerValue(3))))
	require.True(t, types.Equal(types.NewCharValue('+'), types.NewCharValue('+')))
	require.False(t, types.Equal(types.NewTextValue("1"), types.NewIntegerValue(1)))
	require.True(t, types.Equal(nil, nil))
	require.False(t, types.Equal(nil, types.NewIntegerValue(1)))
}
