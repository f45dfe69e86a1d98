package bedutil

import (
	"io"
	"syscall"

	"github.com/cockroachdb/errors"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// It happens when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
