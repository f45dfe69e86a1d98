package kv

import "github.com/cockroachdb/errors"

// Common errors returned by the store.
var (
	// ErrKeyNotFound is returned when the targeted key doesn't exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedSchema is returned when a schema cannot be used to build keys:
	// the first field must be a text and the second one an integer.
	ErrUnsupportedSchema = errors.New("unsupported schema")

	// ErrSchemaMismatch is returned when the schema of a store or of a record
	// differs from the one the store was created with.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
