package bedutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

var errFullDisk = errors.New("no space left on device")

type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errFullDisk
}

func TestCloseAfter(t *testing.T) {
	t.Run("close error is returned", func(t *testing.T) {
		var w failingCloser
		err := closeAfter(&w, func(w io.Writer) error {
			_, err := io.WriteString(w, "chr1\t1\t2\n")
			return err
		})
		require.ErrorIs(t, err, errFullDisk)
		require.True(t, w.closed)
		require.Equal(t, "chr1\t1\t2\n", w.String())
	})

	t.Run("write error takes precedence", func(t *testing.T) {
		errWrite := errors.New("write failed")

		var w failingCloser
		err := closeAfter(&w, func(w io.Writer) error {
			return errWrite
		})
		require.ErrorIs(t, err, errWrite)
		require.NotErrorIs(t, err, errFullDisk)
		require.True(t, w.closed)
	})
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	err := WriteOutput("-", &stdout, func(w io.Writer) error {
		_, err := io.WriteString(w, "chr1\t1\t2\n")
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "chr1\t1\t2\n", stdout.String())

	path := filepath.Join(t.TempDir(), "out.bed")
	err = WriteOutput(path, &stdout, func(w io.Writer) error {
		_, err := io.WriteString(w, "chr2\t3\t4\n")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "chr2\t3\t4\n", string(data))
	require.Equal(t, "chr1\t1\t2\n", stdout.String())
}
