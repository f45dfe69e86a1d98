package kv

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInt64(t *testing.T) {
	values := []int64{math.MinInt64, -1000, -1, 0, 1, 255, 256, 85000835, math.MaxInt64}

	var prev []byte
	for _, v := range values {
		enc := EncodeInt64(nil, v)
		require.Len(t, enc, 8)
		require.Equal(t, v, DecodeInt64(enc))
		if prev != nil {
			require.Equal(t, -1, bytes.Compare(prev, enc), "%d", v)
		}
		prev = enc
	}
}

func TestRecordKey(t *testing.T) {
	k, err := buildRecordKey("chr1", 85000835, 7)
	require.NoError(t, err)

	chrom, start, seq, err := parseRecordKey(k)
	require.NoError(t, err)
	require.Equal(t, "chr1", chrom)
	require.EqualValues(t, 85000835, start)
	require.EqualValues(t, 7, seq)

	// chromosomes sharing a prefix must not interleave
	k1, err := buildRecordKey("chr1", math.MaxInt64, 1)
	require.NoError(t, err)
	k2, err := buildRecordKey("chr10", math.MinInt64, 1)
	require.NoError(t, err)
	require.Equal(t, -1, bytes.Compare(k1, k2))

	_, err = buildRecordKey("chr\x001", 0, 0)
	require.Error(t, err)

	_, _, _, err = parseRecordKey([]byte("m\x1fheader"))
	require.Error(t, err)
}
