package bedutil

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/chaisql/bed"
	"github.com/chaisql/bed/internal/row"
	"github.com/cockroachdb/errors"
)

// ToJSON writes every record of r to w as a stream of json objects, one per line.
func ToJSON(ctx context.Context, r *bed.Reader, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)

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

		data, err := rec.MarshalJSON()
		if err != nil {
			return n, err
		}
		_, err = bw.Write(data)
		if err != nil {
			return n, err
		}
		err = bw.WriteByte('\n')
		if err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}

// FromJSON reads a stream of json objects, one per line, and writes them to w
// as BED records following s.
func FromJSON(ctx context.Context, s *bed.Schema, r io.Reader, w io.Writer) (int, error) {
	if s == nil {
		return 0, errors.New("a schema is required to read json records")
	}

	br := bufio.NewReader(r)
	bw := bed.NewWriter(w)

	var n, line int
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		data, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return n, err
		}
		if len(data) == 0 && err != nil {
			break
		}
		line++

		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			continue
		}

		rec, err := row.ParseJSON(s, data)
		if err != nil {
			return n, errors.Wrapf(err, "line %d", line)
		}

		err = bw.Write(rec)
		if err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}
