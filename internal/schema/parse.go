package schema

import (
	"strconv"
	"strings"

	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
)

// Parse parses a textual schema definition.
// A definition is a comma-separated list of items of the form [name:]type, where type
// is one of text, integer (or int), char, list or record(items...).
// The shorthand bedN, with N between 3 and 12, returns the standard BED schema
// made of the first N columns.
//
//	chrom:text,start:integer,end:integer,strand:char
//	bed12
//	chrom:text,start:int,end:int,blocks:record(int,int,int)
func Parse(def string) (*Schema, error) {
	def = strings.TrimSpace(def)
	if n, ok := strings.CutPrefix(strings.ToLower(def), "bed"); ok {
		if cols, err := strconv.Atoi(n); err == nil {
			return Standard(cols)
		}
	}

	p := parser{s: def}
	fields, err := p.parseFields()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.s[p.pos:])
	}

	return New(fields...)
}

type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool {
	p.skipSpaces()
	return p.pos >= len(p.s)
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSchema, "at char %d: "+format, append([]any{p.pos + 1}, args...)...)
}

// parseFields parses a comma-separated list of fields,
// stopping at the end of the input or at a closing parenthesis.
func (p *parser) parseFields() ([]Field, error) {
	var fields []Field
	for {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)

		if p.peek() != ',' {
			return fields, nil
		}
		p.pos++
	}
}

func (p *parser) parseField() (Field, error) {
	var f Field

	word := p.parseWord()
	if p.peek() == ':' {
		p.pos++
		f.Name = word
		word = p.parseWord()
	}
	if word == "" {
		return f, p.errorf("expected a type")
	}

	switch strings.ToLower(word) {
	case "text", "string":
		f.Type = types.TypeText
	case "integer", "int":
		f.Type = types.TypeInteger
	case "char":
		f.Type = types.TypeChar
	case "list":
		f.Type = types.TypeIntegerList
	case "record":
		f.Type = types.TypeRecord
		if p.peek() != '(' {
			return f, p.errorf("expected '(' after record")
		}
		p.pos++

		sub, err := p.parseFields()
		if err != nil {
			return f, err
		}
		if p.peek() != ')' {
			return f, p.errorf("expected ')'")
		}
		p.pos++

		f.Schema, err = New(sub...)
		if err != nil {
			return f, err
		}
	default:
		return f, p.errorf("unknown type %q", word)
	}

	return f, nil
}

func (p *parser) parseWord() string {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ',' || c == ':' || c == '(' || c == ')' || c == ' ' || c == '\t' {
			break
		}
		p.pos++
	}
	return p.s[start:p.pos]
}
