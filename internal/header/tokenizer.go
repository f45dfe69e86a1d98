package header

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	escapeChar = '\\'
	quoteChar  = '"'
)

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '='
}

type token struct {
	text string
	// value is true if the token follows an unquoted '='.
	value bool
}

// tokenize splits a track line on spaces, tabs and '='.
// Double-quoted segments are kept together and their quotes removed.
// A backslash escapes a backslash, a double quote, or stands for a newline when followed by n.
// Empty pieces between consecutive separators are dropped but an empty
// quoted string produces an empty token.
func tokenize(line string) ([]token, error) {
	var (
		tokens  []token
		sb      strings.Builder
		inQuote bool
		quoted  bool
		escaped bool
		afterEq bool
	)

	flush := func() {
		if sb.Len() > 0 || quoted {
			tokens = append(tokens, token{text: sb.String(), value: afterEq})
			afterEq = false
		}
		sb.Reset()
		quoted = false
	}

	for i, r := range line {
		switch {
		case escaped:
			switch r {
			case escapeChar, quoteChar:
				sb.WriteRune(r)
			case 'n':
				sb.WriteByte('\n')
			default:
				return nil, errors.Wrapf(ErrInvalidHeader, "unknown escape sequence \\%c at char %d", r, i)
			}
			escaped = false
		case r == escapeChar:
			escaped = true
		case r == quoteChar:
			inQuote = !inQuote
			quoted = true
		case !inQuote && isSeparator(r):
			flush()
			if r == '=' {
				afterEq = true
			}
		default:
			sb.WriteRune(r)
		}
	}

	if escaped {
		return nil, errors.Wrap(ErrInvalidHeader, "line ends with an escape character")
	}
	if inQuote {
		return nil, errors.Wrap(ErrInvalidHeader, "unterminated quoted string")
	}
	flush()

	return tokens, nil
}
