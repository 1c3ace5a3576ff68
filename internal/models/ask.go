// internal/models/ask.go
package models

// AskRequest is the body of POST /api/ask. Optional fields keep their zero
// value when omitted; defaults are applied during normalization, after
// schema validation.
type AskRequest struct {
	Question    string   `json:"question"`
	AgeMin      int      `json:"age_min,omitempty"`
	AgeMax      int      `json:"age_max,omitempty"`
	SampleSize  int      `json:"sample_size,omitempty"`
	Sex         string   `json:"sex,omitempty"`
	States      []string `json:"states,omitempty"`
	Occupations []string `json:"occupations,omitempty"`
	Model       string   `json:"model,omitempty"`
}

// AskResponse is the success body of POST /api/ask.
type AskResponse struct {
	RequestID        string                     `json:"request_id"`
	Question         string                     `json:"question"`
	Model            string                     `json:"model"`
	Replies          []LabeledReply             `json:"replies"`
	RegionSentiments map[string]RegionSentiment `json:"region_sentiments"`
	Summary          Summary                    `json:"summary"`
}

// EngineInfo describes one reply-generation engine in the catalog.
type EngineInfo struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// OptionsResponse is the body of GET /api/options.
type OptionsResponse struct {
	States        []string     `json:"states"`
	Occupations   []string     `json:"occupations"`
	Engines       []EngineInfo `json:"engines"`
	DefaultEngine string       `json:"default_engine"`
}

// ErrorResponse is the uniform failure body. Every failure carries the same
// request id as a success would, for log correlation.
type ErrorResponse struct {
	RequestID       string   `json:"request_id"`
	Code            string   `json:"code"`
	Error           string   `json:"error"`
	AvailableModels []string `json:"available_models,omitempty"`
}
