// Package encoding implements the textual BED record codec.
//
// A record is a line of fields separated by tabs. Each field is decoded according
// to the type declared at the same position in the schema. Integer lists and nested
// records are made of comma-terminated parts: every part, including the last one,
// is followed by a comma.
//
//	chr1	85000835	85003645	uc001aaa	0	+	11873	11873	0	3	354,109,1189,	0,739,1347,
//
// Decoding and encoding walk the schema with the same recursive function, the only
// difference between a top-level record and a nested one being the delimiter: tabs
// separate top-level fields, commas terminate nested ones.
package encoding

import (
	"strings"

	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// ErrMalformedRecord is returned when a line or a nested record has fewer
// fields than its schema declares.
var ErrMalformedRecord = errors.New("malformed record")

const (
	// FieldSeparator is written between top-level fields.
	FieldSeparator = '\t'
	// PartTerminator is written after each part of a list or nested record.
	PartTerminator = ','
)

// level describes how the fields of a record are delimited.
type level struct {
	// nested records terminate every field with a comma,
	// top-level records separate fields with a tab.
	nested bool
}

var (
	topLevel    = level{nested: false}
	nestedLevel = level{nested: true}
)

func isFieldSeparator(r rune) bool {
	return r == '\t' || r == ' '
}

func isPartSeparator(r rune) bool {
	return r == PartTerminator
}

// SplitFields splits a line into fields. Tabs and spaces are both treated
// as separators and consecutive separators are collapsed.
func SplitFields(line string) []string {
	return strings.FieldsFunc(line, isFieldSeparator)
}

// SplitParts splits the text of a list or nested record on commas.
// Consecutive commas are collapsed and the empty piece following
// the terminating comma is dropped.
func SplitParts(s string) []string {
	return strings.FieldsFunc(s, isPartSeparator)
}

func (l level) split(s string) []string {
	if l.nested {
		return SplitParts(s)
	}
	return SplitFields(s)
}

// validText reports whether s can be written as a field at the given level
// and decoded back to the same text.
func (l level) validText(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, "\t \r\n") {
		return false
	}
	return !l.nested || !strings.ContainsRune(s, PartTerminator)
}

func fieldName(s *schema.Schema, i int) string {
	if name := s.Field(i).Name; name != "" {
		return name
	}
	return s.Field(i).Type.String()
}

func malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedRecord, format, args...)
}

func mismatch(format string, args ...any) error {
	return errors.Wrapf(types.ErrFieldTypeMismatch, format, args...)
}
