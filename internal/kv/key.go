package kv

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	separator    byte = 0x1F
	recordPrefix byte = 'r'
	metaPrefix   byte = 'm'
)

var (
	headerKey = []byte{metaPrefix, separator, 'h', 'e', 'a', 'd', 'e', 'r'}
	schemaKey = []byte{metaPrefix, separator, 's', 'c', 'h', 'e', 'm', 'a'}
	seqKey    = []byte{metaPrefix, separator, 's', 'e', 'q'}
)

// EncodeInt64 appends n to dst so that the byte order of the
// encoded values matches the numeric order.
func EncodeInt64(dst []byte, n int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(n)+math.MaxInt64+1)
}

// DecodeInt64 decodes a value encoded with EncodeInt64.
func DecodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) - math.MaxInt64 - 1)
}

// recordsPrefix returns the lower bound of all the record keys.
func recordsPrefix() []byte {
	return []byte{recordPrefix, separator}
}

// recordsUpperBound returns the first key greater than every record key.
func recordsUpperBound() []byte {
	return []byte{recordPrefix, separator + 1}
}

// buildChromPrefix builds the prefix shared by every record of a chromosome,
// in the form: 'r' + <sep> + chrom + 0.
// The 0 is used to separate the chromosome from the position
// and to ensure we can quickly find the end of the chromosome
// by replacing 0 by anything bigger.
func buildChromPrefix(chrom string) ([]byte, error) {
	if strings.IndexByte(chrom, 0) >= 0 {
		return nil, errors.Errorf("invalid chromosome name %q", chrom)
	}

	key := make([]byte, 0, len(chrom)+3+16)
	key = append(key, recordPrefix, separator)
	key = append(key, chrom...)
	key = append(key, 0)
	return key, nil
}

// buildRecordKey builds the key of a record:
// 'r' + <sep> + chrom + 0 + start + seq.
func buildRecordKey(chrom string, start int64, seq uint64) ([]byte, error) {
	key, err := buildChromPrefix(chrom)
	if err != nil {
		return nil, err
	}

	key = EncodeInt64(key, start)
	key = binary.BigEndian.AppendUint64(key, seq)
	return key, nil
}

// parseRecordKey extracts the chromosome, the start position and the
// sequence number from a record key.
func parseRecordKey(k []byte) (chrom string, start int64, seq uint64, err error) {
	if len(k) < 2+1+16 || k[0] != recordPrefix || k[1] != separator {
		return "", 0, 0, errors.Errorf("invalid record key %q", k)
	}

	k = k[2:]
	i := bytes.IndexByte(k, 0)
	if i < 0 || len(k)-i-1 != 16 {
		return "", 0, 0, errors.Errorf("invalid record key %q", k)
	}

	chrom = string(k[:i])
	start = DecodeInt64(k[i+1:])
	seq = binary.BigEndian.Uint64(k[i+9:])
	return chrom, start, seq, nil
}
