// internal/population/filter.go
package population

import (
	"strings"

	"askindia/internal/models"
)

// Filters narrows the population to a cohort. The zero value of an optional
// dimension imposes no constraint on that dimension.
type Filters struct {
	AgeMin      int
	AgeMax      int
	Sex         string
	States      []string
	Occupations []string
	SampleSize  int
}

// Normalize repairs caller mistakes: an inverted age range is swapped,
// state names are canonicalized, and the sample size is clamped to the
// population size.
func (f Filters) Normalize(populationSize int) Filters {
	if f.AgeMin > f.AgeMax {
		f.AgeMin, f.AgeMax = f.AgeMax, f.AgeMin
	}
	if f.SampleSize > populationSize {
		f.SampleSize = populationSize
	}

	states := make([]string, 0, len(f.States))
	for _, s := range f.States {
		if norm := NormalizeState(s); norm != "" {
			states = append(states, norm)
		}
	}
	f.States = states

	return f
}

// Filter returns the personas satisfying every specified constraint.
// Pure function, no side effects.
func Filter(personas []models.Persona, f Filters) []models.Persona {
	stateSet := make(map[string]struct{}, len(f.States))
	for _, s := range f.States {
		stateSet[s] = struct{}{}
	}

	var candidates []models.Persona
	for _, p := range personas {
		if p.Age < f.AgeMin || p.Age > f.AgeMax {
			continue
		}
		if f.Sex != "" && !strings.EqualFold(p.Sex, f.Sex) {
			continue
		}
		if len(stateSet) > 0 {
			if _, ok := stateSet[p.State]; !ok {
				continue
			}
		}
		if len(f.Occupations) > 0 && !occupationMatches(p.Occupation, f.Occupations) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// occupationMatches tolerates free-text occupation variety: a candidate
// matches a requested token when either string contains the other,
// case-insensitively.
func occupationMatches(occupation string, requested []string) bool {
	occ := strings.ToLower(occupation)
	for _, r := range requested {
		req := strings.ToLower(strings.TrimSpace(r))
		if req == "" {
			continue
		}
		if strings.Contains(occ, req) || strings.Contains(req, occ) {
			return true
		}
	}
	return false
}
