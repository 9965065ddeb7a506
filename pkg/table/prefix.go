package table

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/yawnoc/stroke-input-data/pkg/ranking"
)

// StrokeDigits is the stroke alphabet, in digit order.
const StrokeDigits = "12345"

// PrefixTable maps every stroke prefix up to a fixed length to the
// union of candidates of all longer exact sequences starting with it.
type PrefixTable struct {
	prefixes []string
	data     map[string]*CharactersData
}

// EnumeratePrefixes lists every stroke string of length 1..maxStrokes,
// in increasing length then lexicographic order.
func EnumeratePrefixes(maxStrokes int) []string {
	var prefixes []string
	current := []string{""}
	for length := 1; length <= maxStrokes; length++ {
		next := make([]string, 0, len(current)*len(StrokeDigits))
		for _, stem := range current {
			for _, digit := range StrokeDigits {
				next = append(next, stem+string(digit))
			}
		}
		prefixes = append(prefixes, next...)
		current = next
	}
	return prefixes
}

// BuildPrefixTable aggregates the exact table into per-prefix candidate
// sets. A sequence equal to the prefix itself is excluded: it is an
// exact match, not a completion.
func BuildPrefixTable(exact *ExactTable, maxStrokes int) *PrefixTable {
	t := &PrefixTable{
		prefixes: EnumeratePrefixes(maxStrokes),
		data:     make(map[string]*CharactersData),
	}
	for _, prefix := range t.prefixes {
		aggregated := NewCharactersData()
		err := exact.trie.VisitSubtree(patricia.Prefix(prefix),
			func(p patricia.Prefix, item patricia.Item) error {
				if len(p) > len(prefix) {
					aggregated.Merge(item.(*CharactersData))
				}
				return nil
			})
		if err != nil {
			log.Errorf("subtree visit failed for prefix %s: %v", prefix, err)
		}
		t.data[prefix] = aggregated
	}
	return t
}

// Prefixes returns the prefixes in emission order.
func (t *PrefixTable) Prefixes() []string { return t.prefixes }

// Get returns the aggregated candidate set for a prefix.
func (t *PrefixTable) Get(prefix string) (*CharactersData, bool) {
	data, ok := t.data[prefix]
	return data, ok
}

// WriteTo emits one "<prefix>\t<characters>" row per prefix in
// enumeration order, each row capped at maxMatchCount characters to
// bound the live lookup's row width.
func (t *PrefixTable) WriteTo(w io.Writer, order *ranking.Table, maxMatchCount int) error {
	bw := bufio.NewWriter(w)
	for _, prefix := range t.prefixes {
		row := t.data[prefix].Render(order, maxMatchCount)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", prefix, row); err != nil {
			return fmt.Errorf("failed to write prefix row for %s: %w", prefix, err)
		}
	}
	return bw.Flush()
}
