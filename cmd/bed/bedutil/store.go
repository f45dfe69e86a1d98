package bedutil

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chaisql/bed"
	"github.com/chaisql/bed/internal/kv"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// number of records inserted per batch.
const loadBatchSize = 1000

// OpenStore opens the store at dbPath. If s is nil, the schema stored in the database is used.
func OpenStore(dbPath string, s *bed.Schema, opts *pebble.Options) (*kv.Store, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}

	st, err := kv.Open(dbPath, s, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", dbPath)
	}

	return st, nil
}

// Load reads every record of r and inserts them into the store at dbPath.
// The store is opened once the first record is read, so that the schema
// of the reader is known. The header of the file, if any, replaces the one of the store.
func Load(ctx context.Context, r *bed.Reader, dbPath string, opts *pebble.Options) (n int, err error) {
	h, err := r.Header()
	if err != nil {
		return 0, err
	}

	first, err := r.Read()
	if errors.Is(err, io.EOF) && r.Schema() == nil {
		// nothing to load and no schema to create the store with
		return 0, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	st, err := OpenStore(dbPath, r.Schema(), opts)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if h != nil {
		err = st.SetHeader(h)
		if err != nil {
			return 0, err
		}
	}
	if first == nil {
		return 0, nil
	}

	batch := make([]*bed.Record, 0, loadBatchSize)
	batch = append(batch, first)
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}

		batch = append(batch, rec)
		if len(batch) == loadBatchSize {
			err = st.InsertBatch(batch)
			if err != nil {
				return n, err
			}
			n += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		err = st.InsertBatch(batch)
		if err != nil {
			return n, err
		}
		n += len(batch)
	}

	return n, nil
}

// Export writes the header and every record of the store to w.
func Export(ctx context.Context, st *kv.Store, w io.Writer) error {
	h, err := st.Header()
	if err != nil {
		return err
	}

	bw := bed.NewWriter(w)
	err = bw.WriteHeader(h)
	if err != nil {
		return err
	}

	err = st.Iterate(func(r *bed.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return bw.Write(r)
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}

// Region is a part of a chromosome: every position in [Start, End).
type Region struct {
	Chrom      string
	Start, End int64
}

// ParseRegion parses a region in the form "chrom", "chrom:start" or "chrom:start-end".
// Digits may be grouped with commas, as in "chr1:1,000,000-2,000,000".
func ParseRegion(s string) (Region, error) {
	chrom, pos, found := strings.Cut(s, ":")
	if chrom == "" {
		return Region{}, errors.Errorf("invalid region %q: missing chromosome", s)
	}

	reg := Region{Chrom: chrom, Start: math.MinInt64, End: math.MaxInt64}
	if !found {
		return reg, nil
	}

	startText, endText, hasEnd := strings.Cut(pos, "-")

	var err error
	reg.Start, err = parsePosition(startText)
	if err != nil {
		return Region{}, errors.Wrapf(err, "invalid region %q", s)
	}
	if hasEnd {
		reg.End, err = parsePosition(endText)
		if err != nil {
			return Region{}, errors.Wrapf(err, "invalid region %q", s)
		}
	}

	if reg.Start >= reg.End {
		return Region{}, errors.Errorf("invalid region %q: start must be lower than end", s)
	}

	return reg, nil
}

func parsePosition(s string) (int64, error) {
	x, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid position %q", s)
	}

	return x, nil
}

// Query writes the records of the store whose start position is in the region.
func Query(ctx context.Context, st *kv.Store, reg Region, w io.Writer) (int, error) {
	bw := bed.NewWriter(w)

	var n int
	err := st.Range(reg.Chrom, reg.Start, reg.End, func(r *bed.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		return bw.Write(r)
	})
	if err != nil {
		return n, err
	}

	return n, bw.Flush()
}
