package bedutil

import (
	"io"
	"os"

	"github.com/chaisql/bed"
	"github.com/cockroachdb/errors"
)

// ParseSchema parses the value of the schema flag.
// An empty definition returns a nil schema, which lets the reader infer it.
func ParseSchema(def string) (*bed.Schema, error) {
	if def == "" {
		return nil, nil
	}

	return bed.ParseSchema(def)
}

// OpenReader opens the BED file at path ("-" for STDIN) and returns a reader following s.
// The returned closer must be closed once done.
func OpenReader(path string, s *bed.Schema) (*bed.Reader, io.Closer, error) {
	f, err := bed.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return bed.NewReader(f, s), f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// CreateOutput returns a writer to the file at path, or to stdout if path is empty or "-".
func CreateOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %s", path)
	}

	return f, nil
}

// WriteOutput calls fn with the output designated by path, as CreateOutput does,
// and closes it. An error returned by fn takes precedence over the one returned by Close.
func WriteOutput(path string, stdout io.Writer, fn func(w io.Writer) error) error {
	w, err := CreateOutput(path, stdout)
	if err != nil {
		return err
	}

	return closeAfter(w, fn)
}

func closeAfter(w io.WriteCloser, fn func(w io.Writer) error) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "cannot close output")
		}
	}()

	return fn(w)
}
