package bm25

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Embed_Deterministic(t *testing.T) {
	encoder := New(0)

	first := encoder.Embed("parliamentary questions about rail transport")
	second := encoder.Embed("parliamentary questions about rail transport")

	assert.Equal(t, first, second)
}

func TestEncoder_Embed_EmptyText(t *testing.T) {
	encoder := New(0)

	vector := encoder.Embed("")

	assert.Empty(t, vector.Indices)
	assert.Empty(t, vector.Values)
}

func TestEncoder_Embed_PunctuationOnly(t *testing.T) {
	encoder := New(0)

	vector := encoder.Embed("... --- !!!")

	assert.Empty(t, vector.Indices)
}

func TestEncoder_Embed_CaseInsensitive(t *testing.T) {
	encoder := New(0)

	upper := encoder.Embed("NATO")
	lower := encoder.Embed("nato")

	assert.Equal(t, upper, lower)
}

func TestEncoder_Embed_SortedIndices(t *testing.T) {
	encoder := New(0)

	vector := encoder.Embed("debate on climate change and energy policy")

	require.NotEmpty(t, vector.Indices)
	assert.True(t, sort.SliceIsSorted(vector.Indices, func(i, j int) bool {
		return vector.Indices[i] < vector.Indices[j]
	}))
	assert.Len(t, vector.Values, len(vector.Indices))
}

func TestEncoder_Embed_RepeatedTermsSaturate(t *testing.T) {
	encoder := New(0)

	once := encoder.Embed("transport")
	thrice := encoder.Embed("transport transport transport")

	require.Len(t, once.Indices, 1)
	require.Len(t, thrice.Indices, 1)
	assert.Equal(t, once.Indices[0], thrice.Indices[0])
	assert.Greater(t, thrice.Values[0], once.Values[0], "repeats raise the weight")
	assert.Less(t, thrice.Values[0], 3*once.Values[0], "sublinearly")
}

func TestEncoder_Embed_DistinctTermsDistinctIndices(t *testing.T) {
	encoder := New(0)

	vector := encoder.Embed("commons lords")

	assert.Len(t, vector.Indices, 2)
	assert.NotEqual(t, vector.Indices[0], vector.Indices[1])
}
