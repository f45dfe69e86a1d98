package bed

import (
	"github.com/chaisql/bed/internal/encoding"
	"github.com/chaisql/bed/internal/header"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
)

var (
	// ErrMalformedRecord is returned when a line has fewer fields, or a nested
	// record fewer parts, than the schema declares.
	ErrMalformedRecord = encoding.ErrMalformedRecord

	// ErrFieldTypeMismatch is returned when a field cannot be decoded or encoded
	// following its declared type.
	ErrFieldTypeMismatch = types.ErrFieldTypeMismatch

	// ErrInvalidHeader is returned when a track line cannot be parsed.
	ErrInvalidHeader = header.ErrInvalidHeader

	// ErrInvalidSchema is returned when a schema is empty, or its fields cannot be encoded unambiguously.
	ErrInvalidSchema = schema.ErrInvalidSchema
)
