package kv_test

import (
	"testing"

	"github.com/chaisql/bed/internal/header"
	"github.com/chaisql/bed/internal/kv"
	"github.com/chaisql/bed/internal/row"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/testutil"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, s *schema.Schema) (*kv.Store, vfs.FS) {
	t.Helper()

	fs := vfs.NewMem()
	st, err := kv.Open("", s, &pebble.Options{FS: fs})
	testutil.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	return st, fs
}

func collect(t *testing.T, fn func(func(*row.Row) error) error) []string {
	t.Helper()

	var lines []string
	err := fn(func(r *row.Row) error {
		lines = append(lines, r.String())
		return nil
	})
	require.NoError(t, err)
	return lines
}

func TestStoreInsert(t *testing.T) {
	st, _ := newStore(t, schema.BED3)

	rows := testutil.MakeRows(t, schema.BED3,
		"chr2\t10\t20",
		"chr1\t300\t400",
		"chr10\t5\t6",
		"chr1\t100\t200",
		"chr1\t100\t150",
	)

	require.NoError(t, st.Insert(rows[0]))
	require.NoError(t, st.InsertBatch(rows[1:]))

	n, err := st.Count()
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.Equal(t, []string{
		"chr1\t100\t200",
		"chr1\t100\t150",
		"chr1\t300\t400",
		"chr10\t5\t6",
		"chr2\t10\t20",
	}, collect(t, st.Iterate))
}

func TestStoreRange(t *testing.T) {
	st, _ := newStore(t, schema.BED6)

	err := st.InsertBatch(testutil.MakeRows(t, schema.BED6,
		"chr1\t100\t200\ta\t0\t+",
		"chr1\t150\t250\tb\t0\t-",
		"chr1\t200\t300\tc\t0\t+",
		"chr2\t150\t160\td\t0\t+",
	))
	require.NoError(t, err)

	rangeOf := func(chrom string, start, end int64) []string {
		return collect(t, func(fn func(*row.Row) error) error {
			return st.Range(chrom, start, end, fn)
		})
	}

	require.Equal(t, []string{"chr1\t100\t200\ta\t0\t+", "chr1\t150\t250\tb\t0\t-"}, rangeOf("chr1", 100, 200))
	require.Equal(t, []string{"chr2\t150\t160\td\t0\t+"}, rangeOf("chr2", 0, 1000))
	require.Empty(t, rangeOf("chr1", 201, 1000))
	require.Empty(t, rangeOf("chr3", 0, 1000))
	require.Empty(t, rangeOf("chr1", 200, 100))
}

func TestStoreIterateStops(t *testing.T) {
	st, _ := newStore(t, schema.BED3)
	require.NoError(t, st.InsertBatch(testutil.MakeRows(t, schema.BED3, "chr1\t1\t2", "chr1\t3\t4")))

	errStop := errors.New("stop")
	var count int
	err := st.Iterate(func(r *row.Row) error {
		count++
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 1, count)
}

func TestStoreHeader(t *testing.T) {
	st, _ := newStore(t, schema.BED3)

	h, err := st.Header()
	require.NoError(t, err)
	require.Nil(t, h)

	line := `track name="ItemRGBDemo" description="Item RGB demonstration" visibility=2 itemRgb="On"`
	want, err := header.Parse(line)
	require.NoError(t, err)
	require.NoError(t, st.SetHeader(want))

	h, err = st.Header()
	require.NoError(t, err)
	require.Equal(t, line, h.String())
	require.True(t, h.ItemRGB)

	require.NoError(t, st.SetHeader(nil))
	h, err = st.Header()
	require.NoError(t, err)
	require.Nil(t, h)
}

func TestStoreSchema(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		_, err := kv.Open("", schema.MustNew(schema.Integer("a"), schema.Integer("b")), &pebble.Options{FS: vfs.NewMem()})
		require.ErrorIs(t, err, kv.ErrUnsupportedSchema)

		_, err = kv.Open("", schema.MustNew(schema.Text("chrom")), &pebble.Options{FS: vfs.NewMem()})
		require.ErrorIs(t, err, kv.ErrUnsupportedSchema)
	})

	t.Run("no schema", func(t *testing.T) {
		_, err := kv.Open("", nil, &pebble.Options{FS: vfs.NewMem()})
		require.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("record with another schema", func(t *testing.T) {
		st, _ := newStore(t, schema.BED3)
		r := testutil.MakeRow(t, schema.BED6, "chr1\t1\t2\ta\t0\t+")
		require.ErrorIs(t, st.Insert(r), kv.ErrSchemaMismatch)
	})
}

func TestStoreReopen(t *testing.T) {
	fs := vfs.NewMem()

	st, err := kv.Open("db", schema.BED3, &pebble.Options{FS: fs})
	require.NoError(t, err)
	require.NoError(t, st.Insert(testutil.MakeRow(t, schema.BED3, "chr1\t10\t20")))
	require.NoError(t, st.Close())

	_, err = kv.Open("db", schema.BED6, &pebble.Options{FS: fs})
	require.ErrorIs(t, err, kv.ErrSchemaMismatch)

	// the schema is loaded from the store
	st, err = kv.Open("db", nil, &pebble.Options{FS: fs})
	require.NoError(t, err)
	defer st.Close()
	require.Equal(t, schema.BED3.String(), st.Schema().String())

	// the sequence is restored so records with the same position keep insertion order
	require.NoError(t, st.Insert(testutil.MakeRow(t, schema.BED3, "chr1\t10\t15")))
	require.Equal(t, []string{"chr1\t10\t20", "chr1\t10\t15"}, collect(t, st.Iterate))
}
