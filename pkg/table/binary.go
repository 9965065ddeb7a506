package table

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yawnoc/stroke-input-data/pkg/ranking"
)

// maxBinaryRows is a sanity bound on row counts when validating an
// export: the full exact table sits around 30k rows, so anything past
// this indicates a corrupt or foreign file.
const maxBinaryRows = 1_000_000

// BinaryRow is one serialized table row in the binary export.
type BinaryRow struct {
	Sequence   string `msgpack:"s"`
	Characters string `msgpack:"c"`
}

// BinaryTableSet is the MessagePack document holding both tables, for
// consumers that load them as data instead of parsing the text files.
type BinaryTableSet struct {
	ExactCount  int         `msgpack:"ec"`
	PrefixCount int         `msgpack:"pc"`
	Exact       []BinaryRow `msgpack:"e"`
	Prefix      []BinaryRow `msgpack:"p"`
}

// WriteBinary exports both tables to a MessagePack file. Rows carry the
// same rendered character strings as the text outputs, so the two
// forms stay interchangeable.
func WriteBinary(path string, exact *ExactTable, prefix *PrefixTable, order *ranking.Table, maxMatchCount int) error {
	doc := BinaryTableSet{
		ExactCount:  exact.Len(),
		PrefixCount: len(prefix.Prefixes()),
	}
	for _, sequence := range exact.Sequences() {
		data, _ := exact.Get(sequence)
		doc.Exact = append(doc.Exact, BinaryRow{
			Sequence:   sequence,
			Characters: data.Render(order, 0),
		})
	}
	for _, p := range prefix.Prefixes() {
		data, _ := prefix.Get(p)
		doc.Prefix = append(doc.Prefix, BinaryRow{
			Sequence:   p,
			Characters: data.Render(order, maxMatchCount),
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create binary export %s: %w", path, err)
	}
	defer file.Close()

	if err := msgpack.NewEncoder(file).Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode binary export %s: %w", path, err)
	}
	log.Debugf("binary export %s: %d exact rows, %d prefix rows", path, doc.ExactCount, doc.PrefixCount)
	return nil
}

// ValidateBinary re-reads a binary export and checks its header counts
// against the row payloads. Returns the exact and prefix row counts.
func ValidateBinary(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open binary export %s: %w", path, err)
	}
	defer file.Close()

	var doc BinaryTableSet
	if err := msgpack.NewDecoder(file).Decode(&doc); err != nil {
		return 0, 0, fmt.Errorf("failed to decode binary export %s: %w", path, err)
	}
	if doc.ExactCount < 0 || doc.PrefixCount < 0 {
		return 0, 0, fmt.Errorf("negative row count in %s: exact=%d prefix=%d", path, doc.ExactCount, doc.PrefixCount)
	}
	if doc.ExactCount > maxBinaryRows || doc.PrefixCount > maxBinaryRows {
		return 0, 0, fmt.Errorf("suspicious row count in %s: exact=%d prefix=%d (too large)", path, doc.ExactCount, doc.PrefixCount)
	}
	if len(doc.Exact) != doc.ExactCount || len(doc.Prefix) != doc.PrefixCount {
		return 0, 0, fmt.Errorf("row count mismatch in %s: header (%d, %d) vs payload (%d, %d)",
			path, doc.ExactCount, doc.PrefixCount, len(doc.Exact), len(doc.Prefix))
	}
	return doc.ExactCount, doc.PrefixCount, nil
}
