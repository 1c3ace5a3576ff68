// internal/survey/orchestrator_test.go
package survey

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/models"
)

// stubRequester fails for persona UUIDs listed in failFor and tracks the
// maximum number of concurrently in-flight calls.
type stubRequester struct {
	failFor     map[string]bool
	delay       time.Duration
	inFlight    int64
	maxInFlight int64
	calls       int64
}

func (s *stubRequester) Generate(ctx context.Context, question, model string, persona models.Persona) (*models.LabeledReply, error) {
	atomic.AddInt64(&s.calls, 1)
	current := atomic.AddInt64(&s.inFlight, 1)
	for {
		max := atomic.LoadInt64(&s.maxInFlight)
		if current <= max || atomic.CompareAndSwapInt64(&s.maxInFlight, max, current) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	atomic.AddInt64(&s.inFlight, -1)

	if s.failFor[persona.UUID] {
		return nil, stderrors.NewReplyGenerationFailedError(errors.New("upstream unavailable"))
	}
	return &models.LabeledReply{
		PersonaUUID: persona.UUID,
		State:       persona.State,
		Answer:      "stub answer",
		Sentiment:   models.SentimentNeutral,
		Confidence:  0.8,
	}, nil
}

func makeSample(n int) []models.Persona {
	sample := make([]models.Persona, n)
	for i := range sample {
		sample[i] = models.Persona{UUID: fmt.Sprintf("p-%d", i), State: "KERALA"}
	}
	return sample
}

func TestMinRequired(t *testing.T) {
	tests := []struct {
		sampleSize int
		expected   int
	}{
		{1, 3},
		{5, 3},
		{10, 3},
		{15, 3},
		{16, 4},
		{20, 4},
		{25, 5},
		{30, 5},
		{100, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MinRequired(tt.sampleSize), "sample size %d", tt.sampleSize)
	}
}

func TestOrchestrator_AllSucceed(t *testing.T) {
	requester := &stubRequester{}
	o := NewOrchestrator(requester, 4, logger.NewTestLogger(t))

	replies, err := o.Collect(context.Background(), "q", "m", makeSample(10))
	require.NoError(t, err)
	assert.Len(t, replies, 10)
	assert.EqualValues(t, 10, atomic.LoadInt64(&requester.calls))
}

func TestOrchestrator_PartialFailureAboveThreshold(t *testing.T) {
	// 30 dispatched, exactly 5 succeed: minRequired for 30 is 5, so the
	// batch passes with the 5 replies it got.
	failFor := make(map[string]bool)
	for i := 5; i < 30; i++ {
		failFor[fmt.Sprintf("p-%d", i)] = true
	}

	o := NewOrchestrator(&stubRequester{failFor: failFor}, 8, logger.NewTestLogger(t))
	replies, err := o.Collect(context.Background(), "q", "m", makeSample(30))
	require.NoError(t, err)
	assert.Len(t, replies, 5)
}

func TestOrchestrator_PartialFailureBelowThreshold(t *testing.T) {
	// 30 dispatched, only 4 succeed: below minRequired=5, the whole batch
	// fails and no partial result escapes.
	failFor := make(map[string]bool)
	for i := 4; i < 30; i++ {
		failFor[fmt.Sprintf("p-%d", i)] = true
	}

	requester := &stubRequester{failFor: failFor}
	o := NewOrchestrator(requester, 8, logger.NewTestLogger(t))
	replies, err := o.Collect(context.Background(), "q", "m", makeSample(30))

	require.Error(t, err)
	assert.Nil(t, replies)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeTooManyFailures, stdErr.Code)

	// A failure must not cancel siblings: every call still ran.
	assert.EqualValues(t, 30, atomic.LoadInt64(&requester.calls))
}

func TestOrchestrator_RespectsConcurrencyCap(t *testing.T) {
	requester := &stubRequester{delay: 20 * time.Millisecond}
	o := NewOrchestrator(requester, 3, logger.NewNoOpLogger())

	_, err := o.Collect(context.Background(), "q", "m", makeSample(20))
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&requester.maxInFlight), int64(3))
}

func TestOrchestrator_SmallSampleNeedsAtLeastThree(t *testing.T) {
	// Sample of 3 with one failure: minRequired floor is 3, two successes
	// are not enough.
	o := NewOrchestrator(&stubRequester{failFor: map[string]bool{"p-0": true}}, 2, logger.NewTestLogger(t))
	_, err := o.Collect(context.Background(), "q", "m", makeSample(3))
	require.Error(t, err)
}
