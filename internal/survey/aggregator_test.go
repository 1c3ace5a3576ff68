// internal/survey/aggregator_test.go
package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askindia/internal/models"
)

func reply(state string, sentiment models.Sentiment) models.LabeledReply {
	return models.LabeledReply{State: state, Sentiment: sentiment}
}

func replies(state string, positive, neutral, negative int) []models.LabeledReply {
	var out []models.LabeledReply
	for i := 0; i < positive; i++ {
		out = append(out, reply(state, models.SentimentPositive))
	}
	for i := 0; i < neutral; i++ {
		out = append(out, reply(state, models.SentimentNeutral))
	}
	for i := 0; i < negative; i++ {
		out = append(out, reply(state, models.SentimentNegative))
	}
	return out
}

func TestAggregate_CountsAndScore(t *testing.T) {
	input := append(replies("KERALA", 3, 1, 1), replies("PUNJAB", 0, 0, 2)...)

	regions, summary := Aggregate(input)
	require.Len(t, regions, 2)

	kerala := regions["KERALA"]
	assert.Equal(t, 3, kerala.Positive)
	assert.Equal(t, 1, kerala.Neutral)
	assert.Equal(t, 1, kerala.Negative)
	assert.Equal(t, 5, kerala.Total)
	assert.InDelta(t, 0.4, kerala.Score, 1e-9)
	assert.Equal(t, models.SentimentPositive, kerala.Dominant)

	punjab := regions["PUNJAB"]
	assert.Equal(t, 2, punjab.Total)
	assert.InDelta(t, -1.0, punjab.Score, 1e-9)
	assert.Equal(t, models.SentimentNegative, punjab.Dominant)

	assert.Equal(t, models.Summary{Total: 7, Positive: 3, Neutral: 1, Negative: 3}, summary)
}

func TestAggregate_DominantTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		positive int
		neutral  int
		negative int
		expected models.Sentiment
	}{
		{"positive and neutral tie resolves positive", 2, 2, 0, models.SentimentPositive},
		{"negative and neutral tie with lower positive resolves negative", 1, 2, 2, models.SentimentNegative},
		{"positive and negative tie resolves positive", 2, 0, 2, models.SentimentPositive},
		{"three-way tie resolves positive", 1, 1, 1, models.SentimentPositive},
		{"neutral wins only with strict majority", 1, 3, 1, models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions, _ := Aggregate(replies("DELHI", tt.positive, tt.neutral, tt.negative))
			assert.Equal(t, tt.expected, regions["DELHI"].Dominant)
		})
	}
}

func TestAggregate_ScoreStaysInBounds(t *testing.T) {
	cases := [][3]int{{5, 0, 0}, {0, 0, 5}, {0, 5, 0}, {1, 2, 3}, {10, 1, 7}}
	for _, c := range cases {
		regions, _ := Aggregate(replies("GOA", c[0], c[1], c[2]))
		rs := regions["GOA"]
		assert.GreaterOrEqual(t, rs.Score, -1.0)
		assert.LessOrEqual(t, rs.Score, 1.0)
		assert.Equal(t, rs.Total, rs.Positive+rs.Neutral+rs.Negative)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	regions, summary := Aggregate(nil)
	assert.Empty(t, regions)
	assert.Equal(t, models.Summary{}, summary)
}

func TestAggregate_NeutralIsDerived(t *testing.T) {
	input := append(replies("ASSAM", 2, 3, 1), replies("BIHAR", 0, 4, 0)...)
	_, summary := Aggregate(input)
	assert.Equal(t, summary.Neutral, summary.Total-summary.Positive-summary.Negative)
	assert.Equal(t, 7, summary.Neutral)
}

func TestAggregate_ZeroReplyRegionsNeverEmitted(t *testing.T) {
	regions, _ := Aggregate(replies("KERALA", 1, 0, 0))
	_, present := regions["PUNJAB"]
	assert.False(t, present)
}
