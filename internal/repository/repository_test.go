package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

func TestProductRepositorySeedsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	repo := NewProductRepository(backend)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	_, found, err := backend.Read(ctx, store.Products)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestProductRepositoryCreateMintsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(store.NewMemoryBackend())

	p, err := repo.Create(ctx, models.Product{Name: "Tawarruq", Status: models.ProductStatusActive})
	require.NoError(t, err)
	assert.Equal(t, "PROD-007", p.ID)
	assert.Equal(t, p.ID, p.Reference)
	assert.NotNil(t, p.Terms)

	got, err := repo.GetByID(ctx, "PROD-007")
	require.NoError(t, err)
	assert.Equal(t, "Tawarruq", got.Name)
}

func TestProductRepositoryNeverReusesDeletedIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(store.NewMemoryBackend())

	p, err := repo.Create(ctx, models.Product{Name: "A", Status: models.ProductStatusActive})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)

	next, err := repo.Create(ctx, models.Product{Name: "B", Status: models.ProductStatusActive})
	require.NoError(t, err)
	assert.Equal(t, "PROD-008", next.ID)
}

func TestProductRepositoryDeleteDoesNotResurrectSeed(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	repo := NewProductRepository(backend)

	removed, err := repo.Delete(ctx, "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, "Murabaha Finance", removed.Name)

	// A fresh repository over the same backend behaves like a page reload.
	reloaded := NewProductRepository(backend)
	products, err := reloaded.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	for _, p := range products {
		assert.NotEqual(t, "PROD-001", p.ID)
	}

	_, err = reloaded.GetByID(ctx, "PROD-001")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestProductRepositoryDeleteAllKeepsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	repo := NewProductRepository(backend)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	for _, p := range products {
		_, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
	}

	products, err = NewProductRepository(backend).GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepositoryDeleteUnknown(t *testing.T) {
	repo := NewProductRepository(store.NewMemoryBackend())
	_, err := repo.Delete(context.Background(), "PROD-999")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestProductRepositoryRejectsInvalidRecord(t *testing.T) {
	repo := NewProductRepository(store.NewMemoryBackend())
	_, err := repo.Create(context.Background(), models.Product{Name: "No status"})
	require.Error(t, err)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestProductRepositoryConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(store.NewMemoryBackend())

	const n = 20
	var wg sync.WaitGroup
	idsCh := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Create(ctx, models.Product{Name: "concurrent", Status: models.ProductStatusActive})
			if assert.NoError(t, err) {
				idsCh <- p.ID
			}
		}()
	}
	wg.Wait()
	close(idsCh)

	seen := map[string]bool{}
	for id := range idsCh {
		assert.False(t, seen[id], id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6+n)
}

func TestScenarioRepositoryCreateAndFindByProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioRepository(store.NewMemoryBackend())

	s, err := repo.Create(ctx, models.Scenario{
		Title:           "Cotton prepayment",
		Status:          models.ScenarioStatusInReview,
		ScenarioType:    models.ScenarioTypeProduct,
		SelectedProduct: "PROD-003",
	})
	require.NoError(t, err)
	assert.Equal(t, "REF-005", s.ID)

	linked, err := repo.GetByProduct(ctx, "PROD-003")
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "REF-005", linked[0].ID)

	none, err := repo.GetByProduct(ctx, "PROD-001")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScenarioRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioRepository(store.NewMemoryBackend())

	_, err := repo.Delete(ctx, "REF-002")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "REF-002")
	assert.ErrorIs(t, err, utils.ErrScenarioNotFound)

	_, err = repo.Delete(ctx, "REF-002")
	assert.ErrorIs(t, err, utils.ErrScenarioNotFound)
}

func TestRepositoryExposesQuarantine(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Write(ctx, store.Scenarios, []byte("garbage")))
	repo := NewScenarioRepository(backend)

	scenarios, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, scenarios)

	entries, err := repo.Quarantined(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "garbage", entries[0].RawText)
}
