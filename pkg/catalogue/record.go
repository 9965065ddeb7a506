/*
Package catalogue classifies the lines of the hand-edited
codepoint-character-sequence catalogue.

The catalogue is lenient by policy: it carries comments, blank lines and
drafts alongside real records, so a line that fails the shape check is
not an error. Callers divert such lines to the ignored-lines diagnostics
file and move on. Only lines matching the strict record shape feed the
tables.
*/
package catalogue

import "regexp"

// Record is one well-formed catalogue entry.
type Record struct {
	// Tag is the code-point label, e.g. "U+4E00". Kept for diagnostics;
	// aggregation keys on Character.
	Tag string
	// Character is the single character the record describes.
	Character rune
	// Discouraged marks characters that should rank behind all
	// preferred candidates (an asterisk after the character).
	Discouraged bool
	// Pattern is the unexpanded stroke-sequence pattern.
	Pattern string
}

// recordShape is the full-line shape of a well-formed record:
// code-point tag, tab, one character with an optional asterisk, tab,
// pattern over the stroke alphabet.
var recordShape = regexp.MustCompile(
	`^(U\+[0-9A-F]{4,5})\t(\S)(\*?)\t([1-5|()\\]+)$`,
)

// ParseLine classifies one catalogue line. The second return value is
// false for every line that is not a well-formed record.
func ParseLine(line string) (Record, bool) {
	m := recordShape.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	character := []rune(m[2])
	if len(character) != 1 {
		return Record{}, false
	}
	return Record{
		Tag:         m[1],
		Character:   character[0],
		Discouraged: m[3] == "*",
		Pattern:     m[4],
	}, true
}
