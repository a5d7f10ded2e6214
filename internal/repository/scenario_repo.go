package repository

import (
	"context"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/seed"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// ScenarioRepository handles data access for scenarios.
type ScenarioRepository struct {
	repo *collectionRepo[models.Scenario]
}

// NewScenarioRepository creates a ScenarioRepository seeded with seed.Scenarios.
func NewScenarioRepository(backend store.Backend) *ScenarioRepository {
	return &ScenarioRepository{
		repo: newCollectionRepo(backend, store.Scenarios, utils.ScenarioIDPrefix, seed.Scenarios),
	}
}

// GetAll returns every scenario in stored order.
func (r *ScenarioRepository) GetAll(ctx context.Context) ([]models.Scenario, error) {
	return r.repo.list(ctx)
}

// GetByID returns a single scenario, or utils.ErrScenarioNotFound.
func (r *ScenarioRepository) GetByID(ctx context.Context, id string) (*models.Scenario, error) {
	s, found, err := r.repo.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrScenarioNotFound
	}
	return &s, nil
}

// GetByProduct returns the scenarios whose selected product is productID.
func (r *ScenarioRepository) GetByProduct(ctx context.Context, productID string) ([]models.Scenario, error) {
	all, err := r.repo.list(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Scenario
	for _, s := range all {
		if s.SelectedProduct == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

// WithLocked runs fn over the current scenarios while holding the
// collection. No scenario can be created or deleted until fn returns.
func (r *ScenarioRepository) WithLocked(ctx context.Context, fn func(scenarios []models.Scenario) error) error {
	return r.repo.locked(ctx, fn)
}

// Create assigns a fresh id and reference to scenario and appends it.
func (r *ScenarioRepository) Create(ctx context.Context, scenario models.Scenario) (*models.Scenario, error) {
	created, err := r.repo.insert(ctx, func(id string) models.Scenario {
		scenario.ID = id
		scenario.Reference = id
		return scenario
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a scenario by id and returns it.
func (r *ScenarioRepository) Delete(ctx context.Context, id string) (*models.Scenario, error) {
	removed, found, err := r.repo.remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrScenarioNotFound
	}
	return &removed, nil
}

// Quarantined returns scenario payloads rejected while loading.
func (r *ScenarioRepository) Quarantined(ctx context.Context) ([]store.QuarantineEntry, error) {
	return r.repo.quarantined(ctx)
}
