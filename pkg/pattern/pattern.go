/*
Package pattern parses and expands the compact stroke-sequence notation
used by the catalogue.

A pattern is a string over the stroke digits 1-5, optionally containing
flat capture groups of pipe-separated digit alternatives, such as
(34|45), and back-references \1 .. \9 to those groups. Expanding a
pattern yields every concrete stroke sequence it denotes: one per
combination of group choices, with each back-reference repeating the
choice of the group it names.

The notation is deliberately tiny: no nesting, no quantifiers, at most
nine groups. Parsing builds a small tagged node list in one
left-to-right scan rather than leaning on a host regex engine, so group
numbering and substitution stay under our control.
*/
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Structural violations of the notation. These are fatal for the whole
// generator run: a line that got past the catalogue shape check but
// carries one of these has a logic bug, not a draft marker.
var (
	ErrBadSymbol       = errors.New("pattern: symbol outside stroke alphabet")
	ErrNestedGroup     = errors.New("pattern: capture groups cannot nest")
	ErrUnclosedGroup   = errors.New("pattern: unclosed capture group")
	ErrUnmatchedParen  = errors.New("pattern: ')' without matching '('")
	ErrTooManyGroups   = errors.New("pattern: more than 9 capture groups")
	ErrBadBackRef      = errors.New("pattern: backslash must be followed by a digit 1-9")
	ErrDanglingBackRef = errors.New("pattern: back-reference to a nonexistent group")
)

// ParseError reports where in a pattern a structural violation sits.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v in %q at offset %d", e.Err, e.Pattern, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// node kinds, grep-style tagged variants.
type node interface{}

type literalNode struct{ text string }
type groupNode struct{ index int }   // 1-based group index
type backRefNode struct{ index int } // 1-based group index

// Pattern is a parsed stroke-sequence pattern ready for expansion.
type Pattern struct {
	source string
	nodes  []node
	// alternatives[i] holds the deduplicated, sorted choices of group i+1.
	alternatives [][]string
}

// maxGroups matches the single-digit back-reference syntax.
const maxGroups = 9

func isStroke(b byte) bool { return b >= '1' && b <= '5' }

// Parse scans a pattern into its node list and validates the structure.
func Parse(source string) (*Pattern, error) {
	p := &Pattern{source: source}

	fail := func(pos int, err error) (*Pattern, error) {
		return nil, &ParseError{Pattern: source, Pos: pos, Err: err}
	}

	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			p.nodes = append(p.nodes, literalNode{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(source); i++ {
		switch b := source[i]; {
		case isStroke(b):
			literal.WriteByte(b)

		case b == '(':
			flush()
			end := strings.IndexByte(source[i+1:], ')')
			if end < 0 {
				return fail(i, ErrUnclosedGroup)
			}
			body := source[i+1 : i+1+end]
			if nested := strings.IndexByte(body, '('); nested >= 0 {
				return fail(i+1+nested, ErrNestedGroup)
			}
			if len(p.alternatives) == maxGroups {
				return fail(i, ErrTooManyGroups)
			}
			alts, bad := splitAlternatives(body)
			if bad >= 0 {
				return fail(i+1+bad, ErrBadSymbol)
			}
			p.alternatives = append(p.alternatives, alts)
			p.nodes = append(p.nodes, groupNode{index: len(p.alternatives)})
			i += end + 1

		case b == ')':
			return fail(i, ErrUnmatchedParen)

		case b == '\\':
			if i+1 >= len(source) || source[i+1] < '1' || source[i+1] > '9' {
				return fail(i, ErrBadBackRef)
			}
			flush()
			p.nodes = append(p.nodes, backRefNode{index: int(source[i+1] - '0')})
			i++

		default:
			return fail(i, ErrBadSymbol)
		}
	}
	flush()

	// Back-references may point forward, so resolve them only once the
	// total group count is known.
	for _, n := range p.nodes {
		if ref, ok := n.(backRefNode); ok && ref.index > len(p.alternatives) {
			return fail(0, fmt.Errorf("%w: \\%d with %d group(s)",
				ErrDanglingBackRef, ref.index, len(p.alternatives)))
		}
	}
	return p, nil
}

// splitAlternatives splits a group body on '|' into deduplicated sorted
// alternatives. Returns the offset of the first non-alphabet byte, or -1.
func splitAlternatives(body string) ([]string, int) {
	for i := 0; i < len(body); i++ {
		if !isStroke(body[i]) && body[i] != '|' {
			return nil, i
		}
	}
	seen := make(map[string]bool)
	var alts []string
	for _, alt := range strings.Split(body, "|") {
		if !seen[alt] {
			seen[alt] = true
			alts = append(alts, alt)
		}
	}
	sort.Strings(alts)
	return alts, -1
}

// Source returns the pattern text the Pattern was parsed from.
func (p *Pattern) Source() string { return p.source }

// GroupCount returns the number of capture groups in the pattern.
func (p *Pattern) GroupCount() int { return len(p.alternatives) }

// Expand enumerates every concrete stroke sequence the pattern denotes.
// The result is sorted and free of duplicates: distinct choice
// combinations may collapse to the same sequence, e.g. when two groups
// share an alternative.
func (p *Pattern) Expand() []string {
	choices := make([]string, len(p.alternatives))
	set := make(map[string]bool)

	var walk func(group int)
	walk = func(group int) {
		if group == len(p.alternatives) {
			set[p.substitute(choices)] = true
			return
		}
		for _, alt := range p.alternatives[group] {
			choices[group] = alt
			walk(group + 1)
		}
	}
	walk(0)

	sequences := make([]string, 0, len(set))
	for sequence := range set {
		sequences = append(sequences, sequence)
	}
	sort.Strings(sequences)
	return sequences
}

// substitute renders one concrete sequence for a fixed choice per group.
// A group behaves exactly like a back-reference to itself.
func (p *Pattern) substitute(choices []string) string {
	var b strings.Builder
	for _, n := range p.nodes {
		switch x := n.(type) {
		case literalNode:
			b.WriteString(x.text)
		case groupNode:
			b.WriteString(choices[x.index-1])
		case backRefNode:
			b.WriteString(choices[x.index-1])
		}
	}
	return b.String()
}

// Expand parses and expands a pattern in one call.
func Expand(source string) ([]string, error) {
	p, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return p.Expand(), nil
}
