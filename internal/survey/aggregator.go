// internal/survey/aggregator.go
package survey

import "askindia/internal/models"

// Aggregate folds successful labeled replies into per-state sentiment and a
// global summary. Pure function: recomputed fresh on every call, never
// updated incrementally. States with zero replies are never emitted.
func Aggregate(replies []models.LabeledReply) (map[string]models.RegionSentiment, models.Summary) {
	regions := make(map[string]models.RegionSentiment)

	for _, r := range replies {
		rs := regions[r.State]
		switch r.Sentiment {
		case models.SentimentPositive:
			rs.Positive++
		case models.SentimentNegative:
			rs.Negative++
		default:
			rs.Neutral++
		}
		regions[r.State] = rs
	}

	var positive, negative int
	for state, rs := range regions {
		rs.Total = rs.Positive + rs.Neutral + rs.Negative
		rs.Score = score(rs)
		rs.Dominant = dominant(rs)
		regions[state] = rs

		positive += rs.Positive
		negative += rs.Negative
	}

	total := len(replies)
	summary := models.Summary{
		Total:    total,
		Positive: positive,
		Negative: negative,
		// Derived, not independently tallied, so it cannot drift.
		Neutral: total - positive - negative,
	}

	return regions, summary
}

func score(rs models.RegionSentiment) float64 {
	if rs.Total == 0 {
		return 0
	}
	return float64(rs.Positive-rs.Negative) / float64(rs.Total)
}

// dominant applies the canonical tie-break order positive > negative >
// neutral: a three-way or positive/negative tie resolves to positive, a
// negative/neutral tie with positive strictly lower resolves to negative.
func dominant(rs models.RegionSentiment) models.Sentiment {
	if rs.Positive >= rs.Negative && rs.Positive >= rs.Neutral {
		return models.SentimentPositive
	}
	if rs.Negative >= rs.Positive && rs.Negative >= rs.Neutral {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}
