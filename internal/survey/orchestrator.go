// internal/survey/orchestrator.go

// Package survey runs the per-request pipeline stage that turns a sampled
// cohort into aggregated sentiment: bounded fan-out over the reply engine,
// a barrier join, and a pure fold of the successful replies.
package survey

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/engine"
	"askindia/internal/models"
)

const (
	// Success-threshold policy: at least ceil(20%) of the sample must
	// answer, floored at 3 and capped at 5.
	minSuccessFloor    = 3
	minSuccessCeil     = 5
	defaultConcurrency = 8
)

// MinRequired computes the minimum number of successful replies for a
// sample of size k: clamp(ceil(0.2*k), 3, 5).
func MinRequired(k int) int {
	required := (k + 4) / 5 // ceil(k / 5)
	if required < minSuccessFloor {
		required = minSuccessFloor
	}
	if required > minSuccessCeil {
		required = minSuccessCeil
	}
	return required
}

// Orchestrator issues one reply-generation call per sampled persona under a
// concurrency cap and joins on all of them before deciding the outcome.
type Orchestrator struct {
	requester   engine.Requester
	concurrency int64
	logger      logger.Logger
}

func NewOrchestrator(requester engine.Requester, concurrency int, log logger.Logger) *Orchestrator {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Orchestrator{
		requester:   requester,
		concurrency: int64(concurrency),
		logger:      log.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// Collect fans out over the sample and waits for every call to settle.
// Calls are independent: a failure neither cancels nor retries siblings.
// Below MinRequired successes the whole batch fails with no partial result;
// at or above it, whatever succeeded is returned in dispatch order.
func (o *Orchestrator) Collect(ctx context.Context, question, model string, sample []models.Persona) ([]models.LabeledReply, error) {
	k := len(sample)
	results := make([]*models.LabeledReply, k)

	sem := semaphore.NewWeighted(o.concurrency)
	var wg sync.WaitGroup
	for i, persona := range sample {
		wg.Add(1)
		go func(i int, persona models.Persona) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			reply, err := o.requester.Generate(ctx, question, model, persona)
			if err != nil {
				o.logger.Warn("persona reply failed", map[string]interface{}{
					"personaUuid": persona.UUID,
					"error":       err.Error(),
				})
				return
			}
			results[i] = reply
		}(i, persona)
	}
	wg.Wait()

	replies := make([]models.LabeledReply, 0, k)
	for _, r := range results {
		if r != nil {
			replies = append(replies, *r)
		}
	}

	required := MinRequired(k)
	if len(replies) < required {
		o.logger.Error("too many upstream failures", map[string]interface{}{
			"sampleSize": k,
			"succeeded":  len(replies),
			"required":   required,
		})
		return nil, stderrors.NewTooManyFailuresError(len(replies), required)
	}

	o.logger.Info("fan-out settled", map[string]interface{}{
		"sampleSize": k,
		"succeeded":  len(replies),
		"failed":     k - len(replies),
	})

	return replies, nil
}
