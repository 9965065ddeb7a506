/*
Package generator wires one full run: read the ranking and catalogue
sources, expand every record's pattern, aggregate the exact and prefix
tables, and write the output files.

A run is a pure function of the two inputs. Everything is aggregated in
memory first and output files are only created once both inputs have
parsed cleanly, so a fatal pattern error leaves no partial tables
behind.
*/
package generator

import (
	"bufio"
	"fmt"
	"os"

	"github.com/yawnoc/stroke-input-data/internal/logger"
	"github.com/yawnoc/stroke-input-data/internal/utils"
	"github.com/yawnoc/stroke-input-data/pkg/catalogue"
	"github.com/yawnoc/stroke-input-data/pkg/config"
	"github.com/yawnoc/stroke-input-data/pkg/pattern"
	"github.com/yawnoc/stroke-input-data/pkg/ranking"
	"github.com/yawnoc/stroke-input-data/pkg/table"
)

const exactFileHeader = `# # sequence-exact-characters.txt

# Character data for exact-match candidates.

# Contains tab-separated (stroke sequence, exact-match characters data) pairs,
# where exact-match characters data consists of
# comma-separated (goodly characters, abominable characters) pairs.

# This file is automatically generated by running strokegen
# in <https://github.com/yawnoc/stroke-input-data>.
# It should NOT be edited manually.
# Manual edits should be made to the codepoint-character-sequence catalogue.

`

const prefixFileHeader = `# # sequence-prefix-characters.txt

# Character data for prefix-match candidates,
# pre-computed for stroke sequences up to length n = %d,
# which limits the live lookup size to ~%d rows / 5^(n+1) = %d.

# Contains tab-separated (stroke sequence, prefix-match characters data) pairs,
# where prefix-match characters data consists of
# comma-separated (goodly characters, abominable characters) pairs.

# This file is automatically generated by running strokegen
# in <https://github.com/yawnoc/stroke-input-data>.
# It should NOT be edited manually.
# Manual edits should be made to the codepoint-character-sequence catalogue.

`

// glog is the package logger, prefixed for run diagnostics.
var glog = logger.New("strokegen")

// Generator runs the table generation described by its config.
type Generator struct {
	cfg *config.Config
}

// New returns a Generator for the given config.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// runData is everything one run aggregates before any file is written.
type runData struct {
	order   *ranking.Table
	exact   *table.ExactTable
	prefix  *table.PrefixTable
	ignored []string
}

// Run performs one full generation. On a fatal pattern error no output
// file is created and the error names the offending record.
func (g *Generator) Run() error {
	data, err := g.aggregate()
	if err != nil {
		return err
	}
	return g.write(data)
}

// aggregate reads both inputs and builds all tables in memory.
func (g *Generator) aggregate() (*runData, error) {
	data := &runData{exact: table.NewExactTable()}

	rankingLines, err := utils.ReadLines(g.cfg.Input.Ranking)
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking source %s: %w", g.cfg.Input.Ranking, err)
	}
	data.order = ranking.Build(rankingLines, func(line string) {
		data.ignored = append(data.ignored, line)
	})
	glog.Debugf("ranking source: %d lines, infinite rank %d", len(rankingLines), data.order.InfiniteRank())

	catalogueLines, err := utils.ReadLines(g.cfg.Input.Catalogue)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", g.cfg.Input.Catalogue, err)
	}
	records := 0
	for i, line := range catalogueLines {
		record, ok := catalogue.ParseLine(line)
		if !ok {
			data.ignored = append(data.ignored, line)
			continue
		}
		sequences, err := pattern.Expand(record.Pattern)
		if err != nil {
			// A malformed pattern on a well-formed record is a logic bug
			// in the catalogue, not a draft line: abort the whole run.
			return nil, fmt.Errorf("record %s (%s line %d): %w",
				record.Tag, g.cfg.Input.Catalogue, i+1, err)
		}
		for _, sequence := range sequences {
			data.exact.Add(sequence, record.Character, record.Discouraged)
		}
		records++
	}
	glog.Debugf("catalogue: %d records, %d ignored lines, %d distinct sequences",
		records, len(data.ignored), data.exact.Len())

	data.prefix = table.BuildPrefixTable(data.exact, g.cfg.Prefix.MaxStrokeCount)
	return data, nil
}

// write emits the two tables, the ignored-lines diagnostics and the
// optional binary export.
func (g *Generator) write(data *runData) error {
	if err := g.writeExact(data); err != nil {
		return err
	}
	if err := g.writePrefix(data); err != nil {
		return err
	}
	if err := g.writeIgnored(data); err != nil {
		return err
	}
	if g.cfg.Output.Binary != "" {
		if err := table.WriteBinary(g.cfg.Output.Binary, data.exact, data.prefix,
			data.order, g.cfg.Prefix.MaxMatchCount); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeExact(data *runData) error {
	file, err := os.Create(g.cfg.Output.Exact)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.cfg.Output.Exact, err)
	}
	defer file.Close()

	if _, err := file.WriteString(exactFileHeader); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", g.cfg.Output.Exact, err)
	}
	if err := data.exact.WriteTo(file, data.order); err != nil {
		return err
	}
	glog.Debugf("wrote %s: %d rows", g.cfg.Output.Exact, data.exact.Len())
	return nil
}

func (g *Generator) writePrefix(data *runData) error {
	file, err := os.Create(g.cfg.Output.Prefix)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.cfg.Output.Prefix, err)
	}
	defer file.Close()

	n := g.cfg.Prefix.MaxStrokeCount
	rows := g.cfg.Prefix.FullLookupRowCount
	header := fmt.Sprintf(prefixFileHeader, n, rows, rows/intPow(5, n+1))
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", g.cfg.Output.Prefix, err)
	}
	if err := data.prefix.WriteTo(file, data.order, g.cfg.Prefix.MaxMatchCount); err != nil {
		return err
	}
	glog.Debugf("wrote %s: %d rows", g.cfg.Output.Prefix, len(data.prefix.Prefixes()))
	return nil
}

func (g *Generator) writeIgnored(data *runData) error {
	file, err := os.Create(g.cfg.Output.Ignored)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.cfg.Output.Ignored, err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	for _, line := range data.ignored {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write %s: %w", g.cfg.Output.Ignored, err)
		}
	}
	return bw.Flush()
}

func intPow(base, exponent int) int {
	result := 1
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}
