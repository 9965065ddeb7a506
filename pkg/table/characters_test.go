package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yawnoc/stroke-input-data/pkg/ranking"
	"github.com/yawnoc/stroke-input-data/pkg/table"
)

// identityOrder ranks nothing, so characters sort by code point alone.
func identityOrder() *ranking.Table {
	return ranking.Build(nil, nil)
}

func newData(preferred, discouraged string) *table.CharactersData {
	data := table.NewCharactersData()
	for _, ch := range preferred {
		data.AddPreferred(ch)
	}
	for _, ch := range discouraged {
		data.AddDiscouraged(ch)
	}
	return data
}

func TestCharactersData_Render(t *testing.T) {
	tests := []struct {
		name        string
		preferred   string
		discouraged string
		maxCount    int
		want        string
	}{
		{
			name:      "preferred only",
			preferred: "cab",
			want:      "abc",
		},
		{
			name:        "both tiers",
			preferred:   "b",
			discouraged: "ca",
			want:        "b,ac",
		},
		{
			name:        "discouraged only",
			discouraged: "ba",
			want:        ",ab",
		},
		{
			name: "empty",
			want: "",
		},
		{
			name:        "truncation spends budget on preferred first",
			preferred:   "bdc",
			discouraged: "a",
			maxCount:    2,
			want:        "bc",
		},
		{
			name:        "leftover budget goes to discouraged",
			preferred:   "b",
			discouraged: "ca",
			maxCount:    2,
			want:        "b,a",
		},
		{
			name:        "comma omitted when discouraged truncates away",
			preferred:   "ab",
			discouraged: "c",
			maxCount:    2,
			want:        "ab",
		},
		{
			name:        "zero max means no truncation",
			preferred:   "abcdef",
			discouraged: "gh",
			maxCount:    0,
			want:        "abcdef,gh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newData(tt.preferred, tt.discouraged)
			assert.Equal(t, tt.want, data.Render(identityOrder(), tt.maxCount))
		})
	}
}

// TestCharactersData_RenderRanked verifies that the rank table drives
// the order within each tier.
func TestCharactersData_RenderRanked(t *testing.T) {
	order := ranking.Build([]string{"cb"}, nil)
	data := newData("abc", "")
	// b and c share rank 1 (code-point tie-break), a is unranked.
	assert.Equal(t, "bca", data.Render(order, 0))
}

// TestCharactersData_BothTiers documents the observed upstream
// behavior: a character registered in both tiers renders twice.
func TestCharactersData_BothTiers(t *testing.T) {
	data := newData("a", "a")
	assert.True(t, data.HasPreferred('a'))
	assert.True(t, data.HasDiscouraged('a'))
	assert.Equal(t, "a,a", data.Render(identityOrder(), 0))
}

func TestCharactersData_Merge(t *testing.T) {
	into := newData("a", "x")
	from := newData("ab", "y")
	into.Merge(from)

	assert.Equal(t, "ab,xy", into.Render(identityOrder(), 0))
	assert.Equal(t, 4, into.Len())
	// Merge must not mutate its argument.
	assert.Equal(t, "ab,y", from.Render(identityOrder(), 0))
}
