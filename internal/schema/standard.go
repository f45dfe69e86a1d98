package schema

import (
	"github.com/cockroachdb/errors"
)

// Positions of the standard BED columns.
const (
	Chrom = iota
	ChromStart
	ChromEnd
	Name
	Score
	Strand
	ThickStart
	ThickEnd
	ItemRgb
	BlockCount
	BlockSizes
	BlockStarts
)

// Minimum and maximum number of standard BED columns.
const (
	MinColumns = 3
	MaxColumns = 12
)

var standardFields = [MaxColumns]Field{
	Text("chrom"),
	Integer("chromStart"),
	Integer("chromEnd"),
	Text("name"),
	Integer("score"),
	Char("strand"),
	Integer("thickStart"),
	Integer("thickEnd"),
	Integer("itemRgb"),
	Integer("blockCount"),
	IntegerList("blockSizes"),
	IntegerList("blockStarts"),
}

var (
	BED3  = MustNew(standardFields[:3]...)
	BED6  = MustNew(standardFields[:6]...)
	BED12 = MustNew(standardFields[:12]...)
)

// Standard returns the schema made of the first n standard BED columns.
func Standard(n int) (*Schema, error) {
	if n < MinColumns || n > MaxColumns {
		return nil, errors.Wrapf(ErrInvalidSchema, "standard BED schemas have between %d and %d columns, got %d", MinColumns, MaxColumns, n)
	}

	return New(standardFields[:n]...)
}

// NestedBED12 returns the 12 column schema where blockSizes and blockStarts
// are nested records of exactly blocks integers, instead of variable-length lists.
func NestedBED12(blocks int) (*Schema, error) {
	if blocks < 1 {
		return nil, errors.Wrapf(ErrInvalidSchema, "nested block records need at least one block, got %d", blocks)
	}

	sub := make([]Field, blocks)
	for i := range sub {
		sub[i] = Integer("")
	}
	blockSchema, err := New(sub...)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, MaxColumns)
	fields = append(fields, standardFields[:BlockSizes]...)
	fields = append(fields,
		Record("blockSizes", blockSchema),
		Record("blockStarts", blockSchema),
	)
	return New(fields...)
}
