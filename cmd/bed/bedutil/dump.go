package bedutil

import (
	"context"
	"io"

	"github.com/chaisql/bed"
	"github.com/cockroachdb/errors"
)

// Dump reads every record from r and writes them to w, preceded by the header if any.
// Separators are normalized to tabs. If there are no records, nothing is written.
func Dump(ctx context.Context, r *bed.Reader, w io.Writer) (int, error) {
	h, err := r.Header()
	if err != nil {
		return 0, err
	}

	bw := bed.NewWriter(w)

	var n int
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

		if n == 0 {
			err = bw.WriteHeader(h)
			if err != nil {
				return n, err
			}
		}

		err = bw.Write(rec)
		if err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}
