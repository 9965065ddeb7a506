/*
Package ranking builds the character ordering used whenever candidate
characters are serialized.

The ranking source is a hand-maintained text file: each non-comment line
lists characters from most to least preferred, and earlier lines beat
later lines. A character's rank is the 1-based number of the first line
it appears on, counting comment lines too, so inserting a comment never
reshuffles existing ranks. Characters absent from the source share a
rank one past the last contributing line and fall back to code-point
order among themselves.
*/
package ranking

import (
	"sort"
	"strings"
)

// Table maps characters to their sorting rank.
type Table struct {
	rankOf       map[rune]int
	infiniteRank int
}

// IsComment reports whether a ranking line is a comment: optional
// leading whitespace, then '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

// Build scans the ranking source lines into a Table. Comment lines are
// skipped and handed to ignore (may be nil) for the diagnostics file.
func Build(lines []string, ignore func(line string)) *Table {
	t := &Table{
		rankOf:       make(map[rune]int),
		infiniteRank: 1,
	}
	for i, line := range lines {
		if IsComment(line) {
			if ignore != nil {
				ignore(line)
			}
			continue
		}
		lineNumber := i + 1
		for _, ch := range line {
			if _, ranked := t.rankOf[ch]; !ranked {
				t.rankOf[ch] = lineNumber
				t.infiniteRank = lineNumber + 1
			}
		}
	}
	return t
}

// Rank returns the sorting rank of ch. Unranked characters all share
// the infinite rank, strictly greater than every explicit one.
func (t *Table) Rank(ch rune) int {
	if rank, ok := t.rankOf[ch]; ok {
		return rank
	}
	return t.infiniteRank
}

// InfiniteRank returns the rank assigned to characters the source never
// mentions.
func (t *Table) InfiniteRank() int { return t.infiniteRank }

// Less orders characters by (rank, character), so ties within a line
// and among unranked characters resolve by code point.
func (t *Table) Less(a, b rune) bool {
	ra, rb := t.Rank(a), t.Rank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

// SortRunes sorts characters in place by the table's ordering.
func (t *Table) SortRunes(runes []rune) {
	sort.Slice(runes, func(i, j int) bool { return t.Less(runes[i], runes[j]) })
}
