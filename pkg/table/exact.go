package table

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/yawnoc/stroke-input-data/pkg/ranking"
)

// ExactTable accumulates sequence -> candidate characters over every
// expanded catalogue record. Entries live in a Patricia trie so the
// prefix precomputation can walk completions of a prefix without
// scanning the whole table.
type ExactTable struct {
	trie *patricia.Trie
	size int
}

// NewExactTable returns an empty exact table.
func NewExactTable() *ExactTable {
	return &ExactTable{trie: patricia.NewTrie()}
}

// Add registers ch as a candidate for sequence, in the tier selected by
// discouraged. The entry is created on first sight of the sequence.
func (t *ExactTable) Add(sequence string, ch rune, discouraged bool) {
	data := t.ensure(sequence)
	if discouraged {
		data.AddDiscouraged(ch)
	} else {
		data.AddPreferred(ch)
	}
}

func (t *ExactTable) ensure(sequence string) *CharactersData {
	if item := t.trie.Get(patricia.Prefix(sequence)); item != nil {
		return item.(*CharactersData)
	}
	data := NewCharactersData()
	t.trie.Insert(patricia.Prefix(sequence), data)
	t.size++
	return data
}

// Get returns the candidate set for an exact sequence.
func (t *ExactTable) Get(sequence string) (*CharactersData, bool) {
	item := t.trie.Get(patricia.Prefix(sequence))
	if item == nil {
		return nil, false
	}
	return item.(*CharactersData), true
}

// Len returns the number of distinct sequences in the table.
func (t *ExactTable) Len() int { return t.size }

// Sequences returns every sequence in the table, sorted
// lexicographically. Sorting is explicit: emission order must never
// depend on trie traversal internals.
func (t *ExactTable) Sequences() []string {
	sequences := make([]string, 0, t.size)
	t.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		sequences = append(sequences, string(p))
		return nil
	})
	sort.Strings(sequences)
	return sequences
}

// WriteTo emits one "<sequence>\t<characters>" row per entry, sorted by
// sequence, with no truncation.
func (t *ExactTable) WriteTo(w io.Writer, order *ranking.Table) error {
	bw := bufio.NewWriter(w)
	for _, sequence := range t.Sequences() {
		data, _ := t.Get(sequence)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", sequence, data.Render(order, 0)); err != nil {
			return fmt.Errorf("failed to write exact row for %s: %w", sequence, err)
		}
	}
	return bw.Flush()
}
