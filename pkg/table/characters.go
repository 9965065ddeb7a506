/*
Package table holds the two lookup tables the generator emits: the
exact table mapping each concrete stroke sequence to its candidate
characters, and the prefix table pre-aggregating candidates for every
short sequence prefix.

Candidates come in two tiers. Preferred characters are the ordinary
spellings of a sequence; discouraged ones are accepted but should be
offered last. A serialized row lists the preferred tier first, then a
comma and the discouraged tier when that tier is non-empty.
*/
package table

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yawnoc/stroke-input-data/pkg/ranking"
)

// CharactersData is the candidate set for one sequence or prefix.
type CharactersData struct {
	preferred   map[rune]bool
	discouraged map[rune]bool
}

// NewCharactersData returns an empty candidate set.
func NewCharactersData() *CharactersData {
	return &CharactersData{
		preferred:   make(map[rune]bool),
		discouraged: make(map[rune]bool),
	}
}

// AddPreferred adds ch to the preferred tier.
func (d *CharactersData) AddPreferred(ch rune) {
	if d.discouraged[ch] && !d.preferred[ch] {
		// Preserved as observed upstream: the tiers stay independent, so
		// such a character renders in both portions of the row.
		log.Debugf("character %q registered as both preferred and discouraged", ch)
	}
	d.preferred[ch] = true
}

// AddDiscouraged adds ch to the discouraged tier.
func (d *CharactersData) AddDiscouraged(ch rune) {
	if d.preferred[ch] && !d.discouraged[ch] {
		log.Debugf("character %q registered as both preferred and discouraged", ch)
	}
	d.discouraged[ch] = true
}

// Merge unions other into d, tier by tier.
func (d *CharactersData) Merge(other *CharactersData) {
	for ch := range other.preferred {
		d.AddPreferred(ch)
	}
	for ch := range other.discouraged {
		d.AddDiscouraged(ch)
	}
}

// Len returns the total number of registered characters across tiers.
func (d *CharactersData) Len() int {
	return len(d.preferred) + len(d.discouraged)
}

// HasPreferred reports whether ch sits in the preferred tier.
func (d *CharactersData) HasPreferred(ch rune) bool { return d.preferred[ch] }

// HasDiscouraged reports whether ch sits in the discouraged tier.
func (d *CharactersData) HasDiscouraged(ch rune) bool { return d.discouraged[ch] }

// Render serializes the candidate set: preferred characters sorted by
// order and concatenated, then ",<discouraged likewise>" when any
// survive. A positive maxCount truncates the preferred tier to
// maxCount characters and leaves the discouraged tier whatever budget
// the full preferred tier did not claim.
func (d *CharactersData) Render(order *ranking.Table, maxCount int) string {
	preferred := sortedRunes(d.preferred, order)
	discouraged := sortedRunes(d.discouraged, order)

	if maxCount > 0 {
		discouragedBudget := max(0, maxCount-len(preferred))
		if len(preferred) > maxCount {
			preferred = preferred[:maxCount]
		}
		if len(discouraged) > discouragedBudget {
			discouraged = discouraged[:discouragedBudget]
		}
	}

	if len(discouraged) == 0 {
		return string(preferred)
	}
	var b strings.Builder
	b.WriteString(string(preferred))
	b.WriteByte(',')
	b.WriteString(string(discouraged))
	return b.String()
}

func sortedRunes(set map[rune]bool, order *ranking.Table) []rune {
	runes := make([]rune, 0, len(set))
	for ch := range set {
		runes = append(runes, ch)
	}
	order.SortRunes(runes)
	return runes
}
