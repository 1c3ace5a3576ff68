// internal/models/sentiment.go
package models

// Sentiment is the closed label set a reply can carry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the three known labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// LabeledReply is the outcome of one successful reply-generation call for
// one persona. Immutable once produced.
type LabeledReply struct {
	PersonaUUID string    `json:"persona_uuid"`
	State       string    `json:"state"`
	Profile     Profile   `json:"profile"`
	Answer      string    `json:"answer"`
	Rationale   string    `json:"rationale"`
	Sentiment   Sentiment `json:"sentiment"`
	Confidence  float64   `json:"confidence"`
}

// RegionSentiment is the per-state rollup of labeled replies.
type RegionSentiment struct {
	Positive int       `json:"positive"`
	Neutral  int       `json:"neutral"`
	Negative int       `json:"negative"`
	Total    int       `json:"total"`
	Dominant Sentiment `json:"dominant"`
	Score    float64   `json:"score"` // (positive - negative) / total, in [-1, 1]
}

// Summary totals replies across all regions. Neutral is derived as
// total - positive - negative so the three counts can never drift apart.
type Summary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}
