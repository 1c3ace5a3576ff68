// internal/engine/openai.go
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"askindia/internal/common/config"
	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/common/metrics"
	"askindia/internal/models"
)

// labeledReplySchema is the structured-output contract sent to the model.
var labeledReplySchema = map[string]interface{}{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"answer", "rationale", "sentiment", "confidence"},
	"properties": map[string]interface{}{
		"answer":    map[string]interface{}{"type": "string"},
		"rationale": map[string]interface{}{"type": "string"},
		"sentiment": map[string]interface{}{
			"type": "string",
			"enum": []string{"positive", "neutral", "negative"},
		},
		"confidence": map[string]interface{}{"type": "number"},
	},
}

// OpenAIRequester generates labeled replies through the OpenAI responses
// API. One call per persona, no retries: a failed call counts against the
// batch tolerance and is never re-issued within the same request.
type OpenAIRequester struct {
	client      openai.Client
	timeout     time.Duration
	maxTokens   int
	temperature float64
	logger      logger.Logger
}

func NewOpenAIRequester(cfg config.EngineConfig, log logger.Logger) *OpenAIRequester {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIRequester{
		client:      openai.NewClient(opts...),
		timeout:     config.GetDuration(cfg.Timeout),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      log.WithFields(map[string]interface{}{"component": "openai-requester"}),
	}
}

func (r *OpenAIRequester) Generate(ctx context.Context, question, model string, persona models.Persona) (*models.LabeledReply, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "LabeledReply",
			Schema:      labeledReplySchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Persona reply with sentiment label"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           model,
		MaxOutputTokens: openai.Int(int64(r.maxTokens)),
		Temperature:     openai.Float(r.temperature),
		Instructions:    openai.String(replyInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildPrompt(question, persona), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	start := time.Now()
	resp, err := r.client.Responses.New(ctx, params)
	metrics.ReplyCallDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReplyCallsTotal.WithLabelValues(model, "error").Inc()
		r.logger.Warn("reply generation call failed", map[string]interface{}{
			"personaUuid": persona.UUID,
			"model":       model,
			"error":       err.Error(),
		})
		return nil, stderrors.NewReplyGenerationFailedError(err)
	}

	var out struct {
		Answer     string  `json:"answer"`
		Rationale  string  `json:"rationale"`
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	}
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		metrics.ReplyCallsTotal.WithLabelValues(model, "error").Inc()
		return nil, stderrors.NewReplyGenerationFailedError(fmt.Errorf("decode reply: %w", err))
	}

	// Tolerate a sloppy model rather than discarding the reply: an unknown
	// label reads as neutral, an out-of-range confidence as 0.5.
	sentiment := models.Sentiment(strings.ToLower(strings.TrimSpace(out.Sentiment)))
	if !sentiment.Valid() {
		sentiment = models.SentimentNeutral
	}
	if out.Confidence < 0.0 || out.Confidence > 1.0 {
		out.Confidence = 0.5
	}

	metrics.ReplyCallsTotal.WithLabelValues(model, "success").Inc()

	return &models.LabeledReply{
		PersonaUUID: persona.UUID,
		State:       persona.State,
		Profile:     persona.Snapshot(),
		Answer:      strings.TrimSpace(out.Answer),
		Rationale:   strings.TrimSpace(out.Rationale),
		Sentiment:   sentiment,
		Confidence:  out.Confidence,
	}, nil
}

// decodeModelJSON unmarshals JSON from a model response, falling back to
// the first top-level object when the model wrapped it in prose.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}
