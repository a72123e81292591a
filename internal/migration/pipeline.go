package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
)

// Persister writes a migrated store back.
type Persister interface {
	Save(ctx context.Context, store model.Store) error
}

// Pipeline migrates a freshly loaded store and persists it when needed.
type Pipeline struct {
	Persister Persister
	Logger    *slog.Logger
}

// Run migrates store and saves the result only if something changed.
func (p *Pipeline) Run(ctx context.Context, store model.Store) (model.Store, Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	migrated, res := Migrate(store)

	if res.Future {
		logger.Warn("Store version is newer than this build, leaving it untouched",
			"version", store.Version,
			"current", CurrentVersion)
		return migrated, res, nil
	}

	for _, step := range res.Applied {
		logger.Info("Applied migration",
			"version", step.Version,
			"description", step.Description)
	}
	if len(res.AddedDefaults) > 0 {
		logger.Info("Added default categories", "ids", res.AddedDefaults)
	}

	if !res.Changed || p.Persister == nil {
		return migrated, res, nil
	}

	if err := p.Persister.Save(ctx, migrated); err != nil {
		return store, res, fmt.Errorf("failed to persist migrated store: %w", err)
	}
	logger.Info("Persisted migrated store", "version", migrated.Version)

	return migrated, res, nil
}
