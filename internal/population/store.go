// internal/population/store.go
package population

import (
	"encoding/json"
	"os"
	"sort"
	"sync"

	"askindia/internal/common/logger"
	"askindia/internal/models"
)

// Population is the immutable result of loading the persona snapshot.
// It is shared read-only across all requests.
type Population struct {
	Personas    []models.Persona
	States      []string // sorted distinct states present in the snapshot
	Occupations []string // sorted distinct non-empty occupations
}

// Store loads the persona snapshot lazily and exactly once per process.
// The first caller of Load triggers the read; everyone after gets the
// memoized result.
type Store struct {
	path   string
	logger logger.Logger

	once sync.Once
	pop  *Population
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"component": "population-store"}),
	}
}

// Load returns the memoized population. A missing or unreadable snapshot
// yields an empty population rather than an error: downstream filtering then
// produces "no candidates" instead of a crash.
func (s *Store) Load() *Population {
	s.once.Do(func() {
		s.pop = s.read()
	})
	return s.pop
}

func (s *Store) read() *Population {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn("persona snapshot not readable, serving empty population", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return &Population{}
	}

	var payload struct {
		Personas []models.Persona `json:"personas"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("persona snapshot not parseable, serving empty population", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return &Population{}
	}

	stateSet := make(map[string]struct{})
	occupationSet := make(map[string]struct{})
	for i := range payload.Personas {
		p := &payload.Personas[i]
		p.State = NormalizeState(p.State)
		if p.State != "" {
			stateSet[p.State] = struct{}{}
		}
		if p.Occupation != "" {
			occupationSet[p.Occupation] = struct{}{}
		}
	}

	pop := &Population{
		Personas:    payload.Personas,
		States:      sortedKeys(stateSet),
		Occupations: sortedKeys(occupationSet),
	}

	s.logger.Info("persona snapshot loaded", map[string]interface{}{
		"path":        s.path,
		"personas":    len(pop.Personas),
		"states":      len(pop.States),
		"occupations": len(pop.Occupations),
	})

	return pop
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
