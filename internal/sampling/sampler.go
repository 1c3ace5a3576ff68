// internal/sampling/sampler.go
package sampling

import (
	"math/rand"
	"sync"

	"askindia/internal/models"
)

// Sampler draws bounded, regionally balanced samples from a candidate set.
// The random source is injected so tests can run against a fixed seed; a
// mutex serializes draws because math/rand sources are not goroutine-safe.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Sample returns exactly min(n, len(candidates)) personas with no
// duplicates. When candidates outnumber n they are partitioned by state and
// every represented state contributes at least one persona where possible,
// so small states are not starved by an unweighted draw.
func (s *Sampler) Sample(candidates []models.Persona, n int) []models.Persona {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candidates) <= n {
		all := append([]models.Persona(nil), candidates...)
		s.shuffle(all)
		return all
	}

	// Partition by state, keeping first-appearance order so draws are
	// reproducible under a seeded source.
	byState := make(map[string][]models.Persona)
	var stateOrder []string
	for _, c := range candidates {
		if _, seen := byState[c.State]; !seen {
			stateOrder = append(stateOrder, c.State)
		}
		byState[c.State] = append(byState[c.State], c)
	}

	perRegion := n / len(stateOrder)
	if perRegion < 1 {
		perRegion = 1
	}

	selected := make([]models.Persona, 0, n)
	picked := make(map[string]struct{}, n)
	for _, state := range stateOrder {
		group := append([]models.Persona(nil), byState[state]...)
		s.shuffle(group)
		take := perRegion
		if take > len(group) {
			take = len(group)
		}
		for _, p := range group[:take] {
			selected = append(selected, p)
			picked[p.UUID] = struct{}{}
		}
	}

	// Uneven states usually leave the selection short; top up from the
	// unselected remainder.
	if len(selected) < n {
		var pool []models.Persona
		for _, c := range candidates {
			if _, ok := picked[c.UUID]; !ok {
				pool = append(pool, c)
			}
		}
		s.shuffle(pool)
		for _, p := range pool {
			if len(selected) >= n {
				break
			}
			selected = append(selected, p)
			picked[p.UUID] = struct{}{}
		}
	}

	s.shuffle(selected)
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// shuffle is an in-place Fisher-Yates permutation.
func (s *Sampler) shuffle(personas []models.Persona) {
	for i := len(personas) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		personas[i], personas[j] = personas[j], personas[i]
	}
}
