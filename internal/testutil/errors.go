package testutil

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// ErrorIs fails the test if err doesn't match target.
// The whole error chain is logged, with its stack trace.
func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()
	ErrorIsf(t, err, target, "Expected error to be %v but got %v instead", target, err)
}

func ErrorIsf(t testing.TB, err error, target error, str string, args ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}
	t.Logf(str, args...)
	if err != nil {
		t.Logf("Stacktrace:\n%+v", err)
	}
	t.FailNow()
}

// NoError fails the test if err is not nil.
func NoError(t testing.TB, err error) {
	t.Helper()

	if err == nil {
		return
	}
	t.Logf("Unexpected error: %+v", err)
	t.FailNow()
}
