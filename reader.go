package bed

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chaisql/bed/internal/encoding"
	"github.com/chaisql/bed/internal/header"
	"github.com/chaisql/bed/internal/row"
	"github.com/chaisql/bed/internal/schema"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// Reader reads records from a BED file.
// Blank lines, comments and browser lines are skipped.
// If the first significant line is a track line, it is parsed as the header.
type Reader struct {
	r      *bufio.Reader
	schema *Schema

	header  *Header
	started bool
	pending string
	line    int
	err     error
}

// NewReader returns a reader decoding lines from r following s.
// If s is nil, the standard schema matching the number of fields
// of the first record is used.
func NewReader(r io.Reader, s *Schema) *Reader {
	return &Reader{
		r:      bufio.NewReader(r),
		schema: s,
	}
}

// Header returns the header of the file, or nil if the file doesn't start
// with a track line.
func (r *Reader) Header() (*Header, error) {
	if err := r.start(); err != nil {
		return nil, err
	}

	return r.header, nil
}

// Schema returns the schema used to decode records. It returns nil
// if it must be inferred and no record has been read yet.
func (r *Reader) Schema() *Schema {
	return r.schema
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Read returns the next record. It returns io.EOF when there are no more records.
func (r *Reader) Read() (*Record, error) {
	if err := r.start(); err != nil {
		return nil, err
	}

	var err error
	line := r.pending
	r.pending = ""
	if line == "" {
		line, err = r.next()
		if err != nil {
			return nil, err
		}
	}

	if r.schema == nil {
		r.schema, err = inferSchema(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}
	}

	rec, err := row.Decode(r.schema, line)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", r.line)
	}

	return rec, nil
}

// ReadAll reads all the remaining records.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
}

// start reads the first significant line and decides
// whether it is a header or a record.
func (r *Reader) start() error {
	if r.started {
		return nil
	}
	r.started = true

	line, err := r.next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	if !header.IsTrackLine(line) {
		r.pending = line
		return nil
	}

	r.header, err = header.Parse(line)
	if err != nil {
		r.err = errors.Wrapf(err, "line %d", r.line)
		return r.err
	}

	return nil
}

// next returns the next significant line, without its line terminator.
// Errors are sticky.
func (r *Reader) next() (string, error) {
	if r.err != nil {
		return "", r.err
	}

	for {
		line, err := r.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.err = errors.Wrapf(err, "line %d", r.line+1)
			return "", r.err
		}
		if err != nil && line == "" {
			r.err = io.EOF
			return "", r.err
		}
		r.line++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if skipLine(line) {
			continue
		}

		return line, nil
	}
}

// inferSchema returns the standard schema with as many columns as line,
// up to 12 columns.
func inferSchema(line string) (*Schema, error) {
	n := len(encoding.SplitFields(line))
	if n > schema.MaxColumns {
		n = schema.MaxColumns
	}

	return schema.Standard(n)
}

// skipLine reports whether a line carries no record: blank lines,
// comments and browser lines.
func skipLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] == '#' {
		return true
	}

	rest, ok := strings.CutPrefix(trimmed, "browser")
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the file at path for reading. The path "-" designates the standard input.
// Gzip-compressed files are detected by their magic number or their .gz extension
// and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "cannot open %s", path)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil
	}

	return f, nil
}
