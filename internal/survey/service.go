// internal/survey/service.go
package survey

import (
	"context"
	"time"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/engine"
	"askindia/internal/models"
	"askindia/internal/population"
	"askindia/internal/sampling"
)

// Recorder receives per-survey telemetry. Nil disables recording.
type Recorder interface {
	RecordSurveyProcessed(ctx context.Context, status string)
	RecordSurveyDuration(ctx context.Context, duration time.Duration, status string)
}

// Service wires the pipeline end to end: filters -> candidates -> sample ->
// orchestrated per-persona calls -> aggregation. Everything it touches is
// scoped to one request except the shared read-only population store.
type Service struct {
	store        *population.Store
	sampler      *sampling.Sampler
	orchestrator *Orchestrator
	catalog      *engine.Catalog
	recorder     Recorder
	logger       logger.Logger
}

func NewService(store *population.Store, sampler *sampling.Sampler, orchestrator *Orchestrator, catalog *engine.Catalog, log logger.Logger) *Service {
	return &Service{
		store:        store,
		sampler:      sampler,
		orchestrator: orchestrator,
		catalog:      catalog,
		logger:       log.WithFields(map[string]interface{}{"component": "survey-service"}),
	}
}

// WithRecorder attaches survey telemetry. Returns the service for chaining.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

func (s *Service) record(ctx context.Context, start time.Time, status string) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordSurveyProcessed(ctx, status)
	s.recorder.RecordSurveyDuration(ctx, time.Since(start), status)
}

// Options reports what a client can ask for: regions and occupations from
// the snapshot, plus the engine catalog.
func (s *Service) Options() models.OptionsResponse {
	pop := s.store.Load()
	return models.OptionsResponse{
		States:        pop.States,
		Occupations:   pop.Occupations,
		Engines:       s.catalog.Engines(),
		DefaultEngine: s.catalog.DefaultID(),
	}
}

// Ask runs one question through the whole pipeline. The request is expected
// to be schema-valid with defaults already applied.
func (s *Service) Ask(ctx context.Context, req models.AskRequest) (*models.AskResponse, error) {
	start := time.Now()

	model, err := s.catalog.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	pop := s.store.Load()

	filters := population.Filters{
		AgeMin:      req.AgeMin,
		AgeMax:      req.AgeMax,
		Sex:         req.Sex,
		States:      req.States,
		Occupations: req.Occupations,
		SampleSize:  req.SampleSize,
	}.Normalize(len(pop.Personas))

	candidates := population.Filter(pop.Personas, filters)
	if len(candidates) == 0 {
		s.record(ctx, start, "no_candidates")
		return nil, stderrors.NewNoCandidatesError()
	}

	sample := s.sampler.Sample(candidates, filters.SampleSize)

	s.logger.Info("cohort sampled", map[string]interface{}{
		"candidates": len(candidates),
		"sample":     len(sample),
		"model":      model,
	})

	replies, err := s.orchestrator.Collect(ctx, req.Question, model, sample)
	if err != nil {
		s.record(ctx, start, "failed")
		return nil, err
	}

	regions, summary := Aggregate(replies)
	s.record(ctx, start, "completed")

	return &models.AskResponse{
		Question:         req.Question,
		Model:            model,
		Replies:          replies,
		RegionSentiments: regions,
		Summary:          summary,
	}, nil
}
