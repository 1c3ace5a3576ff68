// internal/engine/engine.go

// Package engine defines the reply-generation boundary: the contract for
// asking one persona one question, and the catalog of models that can serve
// the call. The survey pipeline depends only on the Requester interface.
package engine

import (
	"context"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/models"
)

// Requester produces one labeled reply for one persona. Implementations
// must return a REPLY_GENERATION_FAILED StandardError on upstream failure
// so the orchestrator can count it against the batch tolerance.
type Requester interface {
	Generate(ctx context.Context, question, model string, persona models.Persona) (*models.LabeledReply, error)
}

// knownEngines is the fixed model catalog. Availability is decided at
// construction time from the configured credentials.
var knownEngines = []struct {
	ID    string
	Label string
}{
	{"gpt-4o-mini", "GPT-4o mini"},
	{"gpt-4o", "GPT-4o"},
	{"gpt-4.1-mini", "GPT-4.1 mini"},
}

// Catalog answers which engines exist, which are usable, and which one is
// the default.
type Catalog struct {
	engines   []models.EngineInfo
	defaultID string
}

func NewCatalog(defaultModel string, credentialed bool) *Catalog {
	c := &Catalog{}
	for _, e := range knownEngines {
		c.engines = append(c.engines, models.EngineInfo{
			ID:        e.ID,
			Label:     e.Label,
			Available: credentialed,
		})
	}
	if credentialed {
		for _, e := range c.engines {
			if e.ID == defaultModel {
				c.defaultID = defaultModel
			}
		}
	}
	return c
}

// Engines returns the full catalog, available or not.
func (c *Catalog) Engines() []models.EngineInfo {
	return append([]models.EngineInfo(nil), c.engines...)
}

// DefaultID returns the configured default engine, or "" when none is
// available.
func (c *Catalog) DefaultID() string {
	return c.defaultID
}

// AvailableIDs lists the engines a request may select.
func (c *Catalog) AvailableIDs() []string {
	var ids []string
	for _, e := range c.engines {
		if e.Available {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Resolve maps a requested model id to a usable engine. An empty id selects
// the default; an unknown or unavailable id fails with the available list
// attached.
func (c *Catalog) Resolve(requested string) (string, error) {
	if requested == "" {
		if c.defaultID == "" {
			return "", stderrors.NewModelUnavailableError("", c.AvailableIDs())
		}
		return c.defaultID, nil
	}
	for _, e := range c.engines {
		if e.ID == requested {
			if !e.Available {
				break
			}
			return e.ID, nil
		}
	}
	return "", stderrors.NewModelUnavailableError(requested, c.AvailableIDs())
}
