package bed_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chaisql/bed"
	"github.com/chaisql/bed/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	t.Run("header and records", func(t *testing.T) {
		f, err := bed.Open(filepath.Join("testdata", "3_column_with_header.bed"))
		require.NoError(t, err)
		defer f.Close()

		r := bed.NewReader(f, bed.BED3)
		h, err := r.Header()
		require.NoError(t, err)
		records, err := r.ReadAll()
		require.NoError(t, err)

		var buf bytes.Buffer
		err = bed.Dump(&buf, h, records)
		require.NoError(t, err)

		want := "track name=\"ItemRGBDemo\" description=\"Item RGB demonstration\" visibility=2 itemRgb=\"On\"\nchr1\t85000835\t85003645\nchr1\t85100217\t85106585\nchr1\t85153339\t85154239\n"
		require.Equal(t, want, buf.String())

		// the output is the original file
		data, err := os.ReadFile(filepath.Join("testdata", "3_column_with_header.bed"))
		require.NoError(t, err)
		require.Equal(t, string(data), buf.String())
	})

	t.Run("no records", func(t *testing.T) {
		h, err := bed.ParseHeader(`track name="foo"`)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = bed.Dump(&buf, h, nil)
		require.NoError(t, err)
		require.Empty(t, buf.String())
	})

	t.Run("no header", func(t *testing.T) {
		var buf bytes.Buffer
		err := bed.Dump(&buf, nil, testutil.MakeRows(t, bed.BED3, "chr1\t1\t2", "chr2 3 4"))
		require.NoError(t, err)
		require.Equal(t, "chr1\t1\t2\nchr2\t3\t4\n", buf.String())
	})
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := bed.NewWriter(&buf)

	h, err := bed.ParseHeader("track name=demo useScore=1")
	require.NoError(t, err)
	require.NoError(t, w.WriteHeader(h))

	for _, r := range testutil.MakeRows(t, bed.BED12, "chr1\t85000835\t85003645\tuc001aaa\t0\t+\t11873\t11873\t0\t3\t354,109,1189,\t0,739,1347,") {
		require.NoError(t, w.Write(r))
	}
	require.Empty(t, buf.String())

	require.NoError(t, w.Flush())
	require.Equal(t, "track name=demo useScore=1\nchr1\t85000835\t85003645\tuc001aaa\t0\t+\t11873\t11873\t0\t3\t354,109,1189,\t0,739,1347,\n", buf.String())
}
