package testutil

import (
	"testing"

	"github.com/chaisql/bed/internal/row"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// MakeRow decodes line using s and fails the test on error.
func MakeRow(t testing.TB, s *schema.Schema, line string) *row.Row {
	t.Helper()

	r, err := row.Decode(s, line)
	require.NoError(t, err)
	return r
}

// MakeRows decodes every line using s.
func MakeRows(t testing.TB, s *schema.Schema, lines ...string) []*row.Row {
	t.Helper()

	var rows []*row.Row
	for _, l := range lines {
		rows = append(rows, MakeRow(t, s, l))
	}
	return rows
}

// MakeValue turns v into a types.Value.
func MakeValue(t testing.TB, v any) types.Value {
	t.Helper()

	vv, err := types.NewValue(v)
	require.NoError(t, err)
	return vv
}

// MakeValues turns every element of vs into a types.Value.
func MakeValues(t testing.TB, vs ...any) []types.Value {
	t.Helper()

	values := make([]types.Value, len(vs))
	for i, v := range vs {
		values[i] = MakeValue(t, v)
	}
	return values
}

// RequireRowEqual fails the test if want and got don't hold the same values.
func RequireRowEqual(t testing.TB, want, got *row.Row) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len(), "rows have different lengths")
	if diff := cmp.Diff(want.Values(), got.Values()); diff != "" {
		require.Failf(t, "mismatched rows", "(-want, +got):\n%s", diff)
	}
}

// RequireRowsEqual compares two lists of rows.
func RequireRowsEqual(t testing.TB, want, got []*row.Row) {
	t.Helper()

	require.Equal(t, len(want), len(got), "expected %d rows, got %d", len(want), len(got))
	for i := range want {
		RequireRowEqual(t, want[i], got[i])
	}
}
