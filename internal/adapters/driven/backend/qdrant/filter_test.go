package qdrant

import (
	"testing"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

func TestTranslateFilter_Nil(t *testing.T) {
	assert.Nil(t, translateFilter(nil))
	assert.Nil(t, translateFilter(&domain.Filter{}))
}

func TestTranslateFilter_DateRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	filter := domain.Compose(domain.DateRange("SittingDate", &from, &to))

	translated := translateFilter(filter)

	require.NotNil(t, translated)
	require.Len(t, translated.Must, 1)
	field := translated.Must[0].GetField()
	require.NotNil(t, field)
	assert.Equal(t, "SittingDate", field.Key)
	r := field.GetDatetimeRange()
	require.NotNil(t, r)
	assert.Equal(t, from, r.Gte.AsTime())
	assert.Equal(t, to, r.Lte.AsTime())
}

func TestTranslateFilter_OpenEndedDateRange(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.Compose(domain.DateRange("SittingDate", &from, nil))

	translated := translateFilter(filter)

	require.NotNil(t, translated)
	r := translated.Must[0].GetField().GetDatetimeRange()
	require.NotNil(t, r)
	assert.NotNil(t, r.Gte)
	assert.Nil(t, r.Lte)
}

func TestTranslateFilter_MatchConditions(t *testing.T) {
	filter := domain.Compose(
		domain.MatchKeyword("House", "Commons"),
		domain.MatchInt("MemberId", 172),
		domain.ContainsText("answeringBodyName", "Transport"),
	)

	translated := translateFilter(filter)

	require.NotNil(t, translated)
	require.Len(t, translated.Must, 3)

	keyword := translated.Must[0].GetField()
	assert.Equal(t, "House", keyword.Key)
	assert.Equal(t, "Commons", keyword.GetMatch().GetKeyword())

	integer := translated.Must[1].GetField()
	assert.Equal(t, "MemberId", integer.Key)
	assert.Equal(t, int64(172), integer.GetMatch().GetInteger())

	text := translated.Must[2].GetField()
	assert.Equal(t, "answeringBodyName", text.Key)
	assert.Equal(t, "Transport", text.GetMatch().GetText())
}

func TestTranslatePayload_NestedShapes(t *testing.T) {
	payload := qdrant.NewValueMap(map[string]any{
		"text":     "a contribution",
		"MemberId": 172,
		"score":    0.5,
		"answered": true,
		"debate_parents": []any{
			map[string]any{"Title": "Commons Chamber"},
		},
	})

	result := translatePayload(payload)

	assert.Equal(t, "a contribution", result["text"])
	assert.Equal(t, int64(172), result["MemberId"])
	assert.Equal(t, 0.5, result["score"])
	assert.Equal(t, true, result["answered"])
	parents, ok := result["debate_parents"].([]any)
	require.True(t, ok)
	require.Len(t, parents, 1)
	parent, ok := parents[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Commons Chamber", parent["Title"])
}

func TestGroupKey_Variants(t *testing.T) {
	byString := &qdrant.GroupId{Kind: &qdrant.GroupId_StringValue{StringValue: "ext-id"}}
	byInt := &qdrant.GroupId{Kind: &qdrant.GroupId_IntegerValue{IntegerValue: 172}}

	assert.Equal(t, "ext-id", groupKey(byString))
	assert.Equal(t, "172", groupKey(byInt))
	assert.Equal(t, "", groupKey(nil))
}
