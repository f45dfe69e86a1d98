package bedutil_test

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chaisql/bed"
	"github.com/chaisql/bed/cmd/bed/bedutil"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"
)

var peaksPath = filepath.Join("testdata", "peaks.bed")

func openPeaks(t *testing.T, s *bed.Schema) *bed.Reader {
	t.Helper()

	r, c, err := bedutil.OpenReader(peaksPath, s)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Close()
	})
	return r
}

func TestParseSchema(t *testing.T) {
	s, err := bedutil.ParseSchema("")
	require.NoError(t, err)
	require.Nil(t, s)

	s, err = bedutil.ParseSchema("bed6")
	require.NoError(t, err)
	require.Equal(t, bed.BED6.String(), s.String())

	_, err = bedutil.ParseSchema("chrom:float")
	require.ErrorIs(t, err, bed.ErrInvalidSchema)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	n, err := bedutil.Dump(context.Background(), openPeaks(t, nil), &buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	require.Equal(t, `track name="peaks" useScore=1
chr2	150	160	d	0	+
chr1	150	250	b	0	-
chr1	100	200	a	0	+
chr1	200	300	c	0	+
`, buf.String())

	t.Run("header without records", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := bedutil.Dump(context.Background(), bed.NewReader(strings.NewReader("track name=foo\n"), bed.BED3), &buf)
		require.NoError(t, err)
		require.Zero(t, n)
		require.Empty(t, buf.String())
	})
}

func TestCheck(t *testing.T) {
	results, err := bedutil.Check(context.Background(), nil,
		peaksPath,
		filepath.Join("testdata", "invalid.bed"),
		filepath.Join("testdata", "missing.bed"),
	)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	require.Equal(t, 4, results[0].Records)

	require.ErrorIs(t, results[1].Err, bed.ErrFieldTypeMismatch)
	require.ErrorContains(t, results[1].Err, "line 2")
	require.Equal(t, 1, results[1].Records)

	require.Error(t, results[2].Err)

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := bedutil.Check(ctx, nil, peaksPath)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestJSON(t *testing.T) {
	var js bytes.Buffer
	n, err := bedutil.ToJSON(context.Background(), openPeaks(t, bed.BED6), &js)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	lines := strings.Split(strings.TrimSpace(js.String()), "\n")
	require.Len(t, lines, 4)
	require.JSONEq(t, `{"chrom": "chr2", "chromStart": 150, "chromEnd": 160, "name": "d", "score": 0, "strand": "+"}`, lines[0])

	var out bytes.Buffer
	n, err = bedutil.FromJSON(context.Background(), bed.BED6, &js, &out)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "chr2\t150\t160\td\t0\t+\nchr1\t150\t250\tb\t0\t-\nchr1\t100\t200\ta\t0\t+\nchr1\t200\t300\tc\t0\t+\n", out.String())

	_, err = bedutil.FromJSON(context.Background(), bed.BED3, strings.NewReader("{\"chrom\": \"chr1\"}\n"), &out)
	require.ErrorIs(t, err, bed.ErrMalformedRecord)
	require.ErrorContains(t, err, "line 1")

	_, err = bedutil.FromJSON(context.Background(), nil, strings.NewReader(""), &out)
	require.Error(t, err)
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in    string
		want  bedutil.Region
		fails bool
	}{
		{"chr1", bedutil.Region{Chrom: "chr1", Start: math.MinInt64, End: math.MaxInt64}, false},
		{"chr1:100", bedutil.Region{Chrom: "chr1", Start: 100, End: math.MaxInt64}, false},
		{"chr1:100-200", bedutil.Region{Chrom: "chr1", Start: 100, End: 200}, false},
		{"chr1:1,000,000-2,000,000", bedutil.Region{Chrom: "chr1", Start: 1000000, End: 2000000}, false},
		{"", bedutil.Region{}, true},
		{":1-2", bedutil.Region{}, true},
		{"chr1:a-2", bedutil.Region{}, true},
		{"chr1:1-b", bedutil.Region{}, true},
		{"chr1:200-100", bedutil.Region{}, true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := bedutil.ParseRegion(test.in)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestStore(t *testing.T) {
	fs := vfs.NewMem()
	opts := func() *pebble.Options { return &pebble.Options{FS: fs} }

	n, err := bedutil.Load(context.Background(), openPeaks(t, nil), "db", opts())
	require.NoError(t, err)
	require.Equal(t, 4, n)

	st, err := bedutil.OpenStore("db", nil, opts())
	require.NoError(t, err)
	defer st.Close()
	require.Equal(t, bed.BED6.String(), st.Schema().String())

	var buf bytes.Buffer
	err = bedutil.Export(context.Background(), st, &buf)
	require.NoError(t, err)
	require.Equal(t, `track name="peaks" useScore=1
chr1	100	200	a	0	+
chr1	150	250	b	0	-
chr1	200	300	c	0	+
chr2	150	160	d	0	+
`, buf.String())

	reg, err := bedutil.ParseRegion("chr1:100-200")
	require.NoError(t, err)

	buf.Reset()
	n, err = bedutil.Query(context.Background(), st, reg, &buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "chr1\t100\t200\ta\t0\t+\nchr1\t150\t250\tb\t0\t-\n", buf.String())
}
