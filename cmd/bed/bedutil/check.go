package bedutil

import (
	"context"
	"io"
	"runtime"

	"github.com/chaisql/bed"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// CheckResult is the outcome of checking a single file.
type CheckResult struct {
	Path    string
	Records int
	Err     error
}

// Check decodes every file concurrently and reports, for each of them,
// the number of records read and the first error encountered.
// The returned error is only set if the context is canceled.
func Check(ctx context.Context, s *bed.Schema, paths ...string) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			n, err := checkFile(ctx, s, path)
			results[i] = CheckResult{Path: path, Records: n, Err: err}
			return ctx.Err()
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(ctx context.Context, s *bed.Schema, path string) (int, error) {
	r, c, err := OpenReader(path, s)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	if _, err := r.Header(); err != nil {
		return 0, err
	}

	var n int
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		_, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
