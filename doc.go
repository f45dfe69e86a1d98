/*
Package bed reads and writes BED files, the tab-delimited format used to describe
genomic intervals.

Records and schemas

A BED line is a list of fields separated by tabs (or spaces). The layout of a line is
described by a Schema: an ordered list of typed fields. Five types are supported:

  - text: a string without whitespace, such as a chromosome name
  - integer: a signed decimal integer
  - char: a single character, such as a strand
  - list: a comma-terminated list of integers, such as "354,109,1189,"
  - record: a fixed number of scalar values, comma-terminated like lists

The standard schemas BED3 to BED12 are provided, and custom schemas can be built
with NewSchema or parsed from a definition:

  s, err := bed.ParseSchema("chrom:text, start:integer, end:integer, strand:char")

Decode and Encode convert a single line to and from a Record. Encoding a decoded
canonical line always returns the original line.

Headers

A BED file may start with a track line:

  track name="ItemRGBDemo" description="Item RGB demonstration" visibility=2 itemRgb="On"

ParseHeader extracts its attributes and keeps the original line so that it can
be written back untouched.

Reading and writing files

Reader reads a whole BED file, skipping comments and browser lines, and Writer
and Dump write a header followed by records.

  f, err := bed.Open("peaks.bed.gz")
  ...
  r := bed.NewReader(f, bed.BED6)
  records, err := r.ReadAll()
*/
package bed
