// Package hunter turns masterlist entities into a ranked list of registered-agent
// search targets and a list of ghost offices.
package hunter

import (
	"context"

	"go.uber.org/zap"

	"ownerhunter/internal/loader"
	"ownerhunter/internal/types"
)

// Result is everything one run derives from the masterlist.
type Result struct {
	Entities     int
	Targets      []types.TargetRecord
	GhostOffices []types.GhostOfficeRecord
}

// Hunter loads, classifies and ranks entities.
type Hunter struct {
	source loader.Source
	links  LinkGenerator
	logger *zap.Logger
}

// New returns a Hunter reading from source.
func New(source loader.Source, links LinkGenerator, logger *zap.Logger) *Hunter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hunter{source: source, links: links, logger: logger}
}

// Run produces the ranked targets and ghost offices. Load errors are returned as-is.
func (h *Hunter) Run(ctx context.Context) (Result, error) {
	entities, err := h.source.Entities(ctx)
	if err != nil {
		return Result{}, err
	}
	h.logger.Debug("hunting for high-value targets", zap.Int("entities", len(entities)))

	c := Classify(entities, h.links)
	Rank(c.Targets)

	h.logger.Info("classified masterlist",
		zap.Int("entities", len(entities)),
		zap.Int("targets", len(c.Targets)),
		zap.Int("ghost_offices", len(c.GhostOffices)),
	)
	return Result{
		Entities:     len(entities),
		Targets:      c.Targets,
		GhostOffices: c.GhostOffices,
	}, nil
}
