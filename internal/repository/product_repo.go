package repository

import (
	"context"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/seed"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	repo *collectionRepo[models.Product]
}

// NewProductRepository creates a ProductRepository seeded with seed.Products.
func NewProductRepository(backend store.Backend) *ProductRepository {
	return &ProductRepository{
		repo: newCollectionRepo(backend, store.Products, utils.ProductIDPrefix, seed.Products),
	}
}

// GetAll returns every product in stored order.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.repo.list(ctx)
}

// GetByID returns a single product, or utils.ErrProductNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	p, found, err := r.repo.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrProductNotFound
	}
	return &p, nil
}

// Create assigns a fresh id and reference to product and appends it.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	created, err := r.repo.insert(ctx, func(id string) models.Product {
		product.ID = id
		product.Reference = id
		if product.Terms == nil {
			product.Terms = []models.Term{}
		}
		return product
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a product by id and returns it.
func (r *ProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	removed, found, err := r.repo.remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrProductNotFound
	}
	return &removed, nil
}

// Quarantined returns product payloads rejected while loading.
func (r *ProductRepository) Quarantined(ctx context.Context) ([]store.QuarantineEntry, error) {
	return r.repo.quarantined(ctx)
}
