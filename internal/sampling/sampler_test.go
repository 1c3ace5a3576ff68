// internal/sampling/sampler_test.go
package sampling

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askindia/internal/models"
)

// buildCandidates creates `perState` personas in each of the given states.
func buildCandidates(states []string, perState int) []models.Persona {
	var out []models.Persona
	for _, state := range states {
		for i := 0; i < perState; i++ {
			out = append(out, models.Persona{
				UUID:  fmt.Sprintf("%s-%d", state, i),
				State: state,
			})
		}
	}
	return out
}

func statesOf(sample []models.Persona) map[string]int {
	counts := make(map[string]int)
	for _, p := range sample {
		counts[p.State]++
	}
	return counts
}

func TestSampler_ExactSizeAndUniqueness(t *testing.T) {
	s := New(rand.NewSource(1))
	candidates := buildCandidates([]string{"KERALA", "PUNJAB", "BIHAR"}, 40)

	for _, n := range []int{5, 30, 100, 120, 200} {
		sample := s.Sample(candidates, n)

		want := n
		if want > len(candidates) {
			want = len(candidates)
		}
		require.Len(t, sample, want, "n=%d", n)

		seen := make(map[string]struct{})
		for _, p := range sample {
			_, dup := seen[p.UUID]
			require.False(t, dup, "duplicate uuid %s for n=%d", p.UUID, n)
			seen[p.UUID] = struct{}{}
		}
	}
}

func TestSampler_SmallCandidateSetReturnsEveryone(t *testing.T) {
	s := New(rand.NewSource(7))
	candidates := buildCandidates([]string{"GOA"}, 4)

	sample := s.Sample(candidates, 30)
	assert.Len(t, sample, 4)
}

func TestSampler_RegionalCoverage(t *testing.T) {
	// 6 states, uneven sizes; n >= state count, so every state must
	// contribute at least one persona.
	states := []string{"KERALA", "PUNJAB", "BIHAR", "GOA", "ASSAM", "DELHI"}
	var candidates []models.Persona
	for i, state := range states {
		candidates = append(candidates, buildCandidates([]string{state}, (i+1)*5)...)
	}

	s := New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		sample := s.Sample(candidates, 12)
		require.Len(t, sample, 12)

		counts := statesOf(sample)
		for _, state := range states {
			assert.GreaterOrEqual(t, counts[state], 1, "state %s starved on trial %d", state, trial)
		}
	}
}

func TestSampler_DeterministicUnderSeededSource(t *testing.T) {
	candidates := buildCandidates([]string{"KERALA", "PUNJAB", "BIHAR"}, 20)

	a := New(rand.NewSource(99)).Sample(candidates, 15)
	b := New(rand.NewSource(99)).Sample(candidates, 15)
	assert.Equal(t, a, b)
}

func TestSampler_NotBiasedTowardInputOrder(t *testing.T) {
	candidates := buildCandidates([]string{"KERALA"}, 50)
	s := New(rand.NewSource(3))

	sample := s.Sample(candidates, 50)
	require.Len(t, sample, 50)

	// A uniform permutation of 50 elements practically never equals the
	// identity permutation.
	same := true
	for i := range sample {
		if sample[i].UUID != candidates[i].UUID {
			same = false
			break
		}
	}
	assert.False(t, same, "sample preserved input order")
}

func TestSampler_ZeroAndEmptyInputs(t *testing.T) {
	s := New(rand.NewSource(1))
	assert.Nil(t, s.Sample(nil, 10))
	assert.Nil(t, s.Sample(buildCandidates([]string{"GOA"}, 3), 0))
}
