package table_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yawnoc/stroke-input-data/pkg/table"
)

func TestExactTable_Accumulate(t *testing.T) {
	exact := table.NewExactTable()
	exact.Add("25", '十', false)
	exact.Add("25", '卜', true)
	exact.Add("251", '口', false)
	exact.Add("25", '又', false)

	assert.Equal(t, 2, exact.Len())

	data, ok := exact.Get("25")
	require.True(t, ok)
	assert.True(t, data.HasPreferred('十'))
	assert.True(t, data.HasPreferred('又'))
	assert.True(t, data.HasDiscouraged('卜'))

	_, ok = exact.Get("2")
	assert.False(t, ok, "prefixes of stored sequences are not entries")
}

func TestExactTable_SequencesSorted(t *testing.T) {
	exact := table.NewExactTable()
	for _, sequence := range []string{"31", "1", "52", "12", "111"} {
		exact.Add(sequence, 'x', false)
	}
	assert.Equal(t, []string{"1", "111", "12", "31", "52"}, exact.Sequences())
}

func TestExactTable_WriteTo(t *testing.T) {
	exact := table.NewExactTable()
	exact.Add("2", 'b', false)
	exact.Add("1", 'a', false)
	exact.Add("1", 'c', true)

	var buf bytes.Buffer
	require.NoError(t, exact.WriteTo(&buf, identityOrder()))
	assert.Equal(t, "1\ta,c\n2\tb\n", buf.String())
}

func TestEnumeratePrefixes(t *testing.T) {
	prefixes := table.EnumeratePrefixes(2)
	require.Len(t, prefixes, 5+25)
	assert.Equal(t, "1", prefixes[0])
	assert.Equal(t, "5", prefixes[4])
	assert.Equal(t, "11", prefixes[5], "all length-1 prefixes come before length-2")
	assert.Equal(t, "12", prefixes[6])
	assert.Equal(t, "55", prefixes[29])
}

func TestBuildPrefixTable(t *testing.T) {
	exact := table.NewExactTable()
	exact.Add("1", 'a', false)
	exact.Add("11", 'b', false)
	exact.Add("112", 'c', true)
	exact.Add("12", 'd', false)
	exact.Add("3", 'e', false)

	prefix := table.BuildPrefixTable(exact, 2)

	one, ok := prefix.Get("1")
	require.True(t, ok)
	assert.False(t, one.HasPreferred('a'), "a sequence equal to the prefix is not a completion")
	assert.True(t, one.HasPreferred('b'))
	assert.True(t, one.HasDiscouraged('c'))
	assert.True(t, one.HasPreferred('d'))
	assert.False(t, one.HasPreferred('e'))

	oneOne, ok := prefix.Get("11")
	require.True(t, ok)
	assert.False(t, oneOne.HasPreferred('b'))
	assert.True(t, oneOne.HasDiscouraged('c'))

	three, ok := prefix.Get("3")
	require.True(t, ok)
	assert.Equal(t, 0, three.Len(), "no completion of 3 exists")

	_, ok = prefix.Get("111")
	assert.False(t, ok, "beyond the stroke bound")
}

// TestBuildPrefixTable_Containment checks the monotone union property:
// every candidate of a longer sequence shows up on each of its proper
// prefixes.
func TestBuildPrefixTable_Containment(t *testing.T) {
	exact := table.NewExactTable()
	entries := map[string]string{
		"121":  "ab",
		"122":  "c",
		"1215": "d",
		"34":   "e",
	}
	for sequence, chars := range entries {
		for _, ch := range chars {
			exact.Add(sequence, ch, false)
		}
	}

	prefix := table.BuildPrefixTable(exact, 3)

	for sequence, chars := range entries {
		for _, p := range prefix.Prefixes() {
			if len(sequence) <= len(p) || sequence[:len(p)] != p {
				continue
			}
			data, ok := prefix.Get(p)
			require.True(t, ok)
			for _, ch := range chars {
				assert.True(t, data.HasPreferred(ch),
					"character %q of %s missing from prefix %s", ch, sequence, p)
			}
		}
	}
}

func TestPrefixTable_WriteTo(t *testing.T) {
	exact := table.NewExactTable()
	exact.Add("11", 'a', false)
	exact.Add("12", 'b', false)
	exact.Add("13", 'c', true)

	prefix := table.BuildPrefixTable(exact, 1)

	var buf bytes.Buffer
	require.NoError(t, prefix.WriteTo(&buf, identityOrder(), 2))
	assert.Equal(t, "1\tab\n2\t\n3\t\n4\t\n5\t\n", buf.String(),
		"rows are capped and empty prefixes still emit")
}

func TestBinaryRoundTrip(t *testing.T) {
	exact := table.NewExactTable()
	exact.Add("11", 'a', false)
	exact.Add("12", 'b', true)

	prefix := table.BuildPrefixTable(exact, 1)
	path := filepath.Join(t.TempDir(), "tables.bin")

	require.NoError(t, table.WriteBinary(path, exact, prefix, identityOrder(), 20))

	exactRows, prefixRows, err := table.ValidateBinary(path)
	require.NoError(t, err)
	assert.Equal(t, 2, exactRows)
	assert.Equal(t, 5, prefixRows)
}

func TestValidateBinary_MissingFile(t *testing.T) {
	_, _, err := table.ValidateBinary(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}
