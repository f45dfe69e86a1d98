package bed

import (
	"bufio"
	"io"
)

// Writer writes a header and records to an underlying writer.
// Each line is terminated by a newline. Callers must call Flush once done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter returns a buffered writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the original track line of h. A nil or empty header writes nothing.
func (w *Writer) WriteHeader(h *Header) error {
	if h.IsZero() {
		return nil
	}

	_, err := w.w.WriteString(h.String())
	if err != nil {
		return err
	}

	return w.w.WriteByte('\n')
}

// Write encodes r and writes it on its own line.
func (w *Writer) Write(r *Record) error {
	var err error

	w.buf, err = r.AppendText(w.buf[:0])
	if err != nil {
		return err
	}
	w.buf = append(w.buf, '\n')

	_, err = w.w.Write(w.buf)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Dump writes the header followed by every record.
// If there are no records, nothing is written, not even the header.
func Dump(w io.Writer, h *Header, records []*Record) error {
	if len(records) == 0 {
		return nil
	}

	bw := NewWriter(w)
	err := bw.WriteHeader(h)
	if err != nil {
		return err
	}

	for _, r := range records {
		err = bw.Write(r)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
