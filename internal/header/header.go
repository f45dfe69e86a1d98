// Package header parses the optional "track" line found at the top of BED files.
//
//	track name="ItemRGBDemo" description="Item RGB demonstration" visibility=2 itemRgb="On"
//
// The original line is kept verbatim: parsed attributes are read-only projections
// and String always returns the line as it was read.
package header

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidHeader is returned when a track line cannot be parsed.
var ErrInvalidHeader = errors.New("invalid header")

// Prefix is the first token of every track line.
const Prefix = "track"

// Names accepted for the visibility attribute, in addition to integers.
var visibilityNames = map[string]int{
	"hide":   0,
	"dense":  1,
	"full":   2,
	"pack":   3,
	"squish": 4,
}

// RGB is a color made of red, green and blue components.
type RGB [3]uint8

func (c RGB) String() string {
	return strconv.Itoa(int(c[0])) + "," + strconv.Itoa(int(c[1])) + "," + strconv.Itoa(int(c[2]))
}

// Header is a parsed track line.
type Header struct {
	line string

	Name        string
	Description string
	Visibility  int
	UseScore    bool
	ItemRGB     bool

	// ColorByStrand is set when the track line declares colors per strand.
	ColorByStrand bool
	ForwardColor  RGB
	ReverseColor  RGB
}

// New returns an empty header, not associated with any track line.
func New() *Header {
	return &Header{}
}

// IsTrackLine reports whether the first token of line is "track".
func IsTrackLine(line string) bool {
	rest, ok := strings.CutPrefix(line, Prefix)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// Parse parses a track line. Unknown keys are ignored along with
// the value assigned to them.
func Parse(line string) (*Header, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 || tokens[0].text != Prefix {
		return nil, errors.Wrapf(ErrInvalidHeader, "expected line to start with %q", Prefix)
	}

	h := Header{line: line}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].value {
			continue
		}
		key := tokens[i].text

		switch key {
		case "name", "description", "visibility", "useScore", "itemRgb", "colorByStrand":
		default:
			continue
		}

		if i+1 >= len(tokens) {
			return nil, errors.Wrapf(ErrInvalidHeader, "missing value for %q", key)
		}
		i++
		value := tokens[i].text

		switch key {
		case "name":
			h.Name = value
		case "description":
			h.Description = value
		case "visibility":
			h.Visibility, err = parseVisibility(value)
		case "useScore":
			h.UseScore = value != "0"
		case "itemRgb":
			h.ItemRGB = value == "On"
		case "colorByStrand":
			h.ColorByStrand = true
			h.ForwardColor, h.ReverseColor, err = parseStrandColors(value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
	}

	return &h, nil
}

// String returns the original track line.
func (h *Header) String() string {
	return h.line
}

// IsZero reports whether the header was not read from a track line.
func (h *Header) IsZero() bool {
	return h == nil || h.line == ""
}

func parseVisibility(s string) (int, error) {
	if v, ok := visibilityNames[s]; ok {
		return v, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHeader, "cannot parse visibility %q", s)
	}
	return v, nil
}

// parseStrandColors parses two RGB triples separated by commas, spaces or tabs.
func parseStrandColors(s string) (forward, reverse RGB, err error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) < 6 {
		return forward, reverse, errors.Wrapf(ErrInvalidHeader, "expected 6 color components, got %d", len(parts))
	}

	for i := 0; i < 6; i++ {
		x, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return forward, reverse, errors.Wrapf(ErrInvalidHeader, "invalid color component %q", parts[i])
		}
		if i < 3 {
			forward[i] = uint8(x)
		} else {
			reverse[i-3] = uint8(x)
		}
	}

	return forward, reverse, nil
}
